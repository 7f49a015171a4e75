package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block видимый блок текста: номер строки (с нуля), смещение в строках
// экрана от верха вьюпорта и высота в строках экрана
type Block struct {
	Number int
	Top    int
	Height int
}

// GutterStyle стили области номеров строк
type GutterStyle struct {
	Number lipgloss.Style // номера строк и фон
	Active lipgloss.Style // номер текущей строки
}

// Gutter рисует номера строк рядом с текстом
type Gutter struct {
	style GutterStyle
	width int

	// отрисованные ячейки по номеру строки, сбрасываются при смене ширины или стиля
	cells  map[int]string
	active map[int]string
	blank  string
}

// NewGutter создает гаттер для документа из одной строки
func NewGutter(style GutterStyle) *Gutter {
	g := &Gutter{style: style}
	g.SetBlockCount(1)
	return g
}

// GutterWidth ширина гаттера: число цифр максимального номера и по ячейке отступа с каждой стороны
func GutterWidth(blockCount int) int {
	return len(strconv.Itoa(max(1, blockCount))) + 2
}

// Width текущая ширина гаттера (левый отступ текстовой области)
func (g *Gutter) Width() int {
	return g.width
}

// SetBlockCount обновляет число блоков документа.
// Возвращает true, если изменилась ширина гаттера и вместе с ней отступ текста.
func (g *Gutter) SetBlockCount(n int) bool {
	width := GutterWidth(n)
	if width == g.width {
		return false
	}
	g.width = width
	g.invalidate()
	return true
}

// SetStyle меняет стиль и сбрасывает кеш
func (g *Gutter) SetStyle(style GutterStyle) {
	g.style = style
	g.invalidate()
}

func (g *Gutter) invalidate() {
	g.cells = make(map[int]string)
	g.active = make(map[int]string)
	g.blank = g.style.Number.Render(strings.Repeat(" ", g.width))
}

// Render возвращает ровно height строк гаттера для видимых блоков.
// current номер строки с кареткой, -1 если выделять нечего.
func (g *Gutter) Render(blocks []Block, height, current int) []string {
	rows := make([]string, max(height, 0))
	for i := range rows {
		rows[i] = g.blank
	}
	for _, b := range blocks {
		if b.Top < 0 || b.Top >= len(rows) {
			continue
		}
		rows[b.Top] = g.cell(b.Number, b.Number == current)
		// строки продолжения (перенос) остаются пустыми
	}
	return rows
}

func (g *Gutter) cell(number int, active bool) string {
	cache, style := g.cells, g.style.Number
	if active {
		cache, style = g.active, g.style.Active
	}
	if cell, ok := cache[number]; ok {
		return cell
	}
	cell := style.Render(fmt.Sprintf("%*d ", g.width-1, number+1))
	cache[number] = cell
	return cell
}
