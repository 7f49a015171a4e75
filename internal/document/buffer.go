package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pos позиция в буфере: строка и колонка в рунах
type Pos struct {
	Line int
	Col  int
}

// Before сообщает, стоит ли p раньше other
func (p Pos) Before(other Pos) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// Buffer хранит текст построчно вместе с кареткой и якорем выделения
type Buffer struct {
	lines  [][]rune
	cursor Pos
	anchor *Pos
}

// NewBuffer создает буфер с текстом (переводы строк — LF)
func NewBuffer(content string) *Buffer {
	b := &Buffer{}
	b.SetText(content)
	return b
}

// LineCount количество строк (блоков); пустой буфер содержит одну строку
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line возвращает текст строки
func (b *Buffer) Line(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// LineRunes возвращает руны строки без копирования; вызывающий не должен их менять
func (b *Buffer) LineRunes(line int) []rune {
	if line < 0 || line >= len(b.lines) {
		return nil
	}
	return b.lines[line]
}

// LineLength длина строки в рунах
func (b *Buffer) LineLength(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// Cursor текущая позиция каретки
func (b *Buffer) Cursor() Pos {
	return b.cursor
}

// Anchor якорь выделения, если он установлен
func (b *Buffer) Anchor() (Pos, bool) {
	if b.anchor == nil {
		return Pos{}, false
	}
	return *b.anchor, true
}

func (b *Buffer) normalizeCursor() {
	b.cursor = b.clamp(b.cursor)
}

func (b *Buffer) clamp(p Pos) Pos {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	lineLen := b.LineLength(p.Line)
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > lineLen {
		p.Col = lineLen
	}
	return p
}

// MoveTo перемещает каретку с ограничением по границам текста
func (b *Buffer) MoveTo(line, col int) {
	b.cursor = Pos{Line: line, Col: col}
	b.normalizeCursor()
}

// MoveLeft сдвигает каретку влево, переходя на предыдущую строку
func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Col = len(b.lines[b.cursor.Line])
	}
}

// MoveRight сдвигает каретку вправо, переходя на следующую строку
func (b *Buffer) MoveRight() {
	if b.cursor.Col < len(b.lines[b.cursor.Line]) {
		b.cursor.Col++
		return
	}
	if b.cursor.Line < len(b.lines)-1 {
		b.cursor.Line++
		b.cursor.Col = 0
	}
}

// MoveUp поднимает каретку на строку выше
func (b *Buffer) MoveUp() {
	if b.cursor.Line == 0 {
		b.cursor.Col = 0
		return
	}
	b.cursor.Line--
	b.cursor.Col = min(b.cursor.Col, len(b.lines[b.cursor.Line]))
}

// MoveDown опускает каретку на строку ниже
func (b *Buffer) MoveDown() {
	last := len(b.lines) - 1
	if b.cursor.Line >= last {
		b.cursor.Col = len(b.lines[last])
		return
	}
	b.cursor.Line++
	b.cursor.Col = min(b.cursor.Col, len(b.lines[b.cursor.Line]))
}

// MoveWordLeft переносит каретку к началу предыдущего слова
func (b *Buffer) MoveWordLeft() {
	if b.cursor.Col == 0 {
		b.MoveLeft()
		return
	}
	line := b.lines[b.cursor.Line]
	col := b.cursor.Col
	for col > 0 && !isWordRune(line[col-1]) {
		col--
	}
	for col > 0 && isWordRune(line[col-1]) {
		col--
	}
	b.cursor.Col = col
}

// MoveWordRight переносит каретку за конец следующего слова
func (b *Buffer) MoveWordRight() {
	line := b.lines[b.cursor.Line]
	if b.cursor.Col >= len(line) {
		b.MoveRight()
		return
	}
	col := b.cursor.Col
	for col < len(line) && !isWordRune(line[col]) {
		col++
	}
	for col < len(line) && isWordRune(line[col]) {
		col++
	}
	b.cursor.Col = col
}

// SetAnchor фиксирует начало выделения в текущей позиции каретки
func (b *Buffer) SetAnchor() {
	pos := b.cursor
	b.anchor = &pos
}

// SetAnchorAt фиксирует начало выделения в заданной позиции
func (b *Buffer) SetAnchorAt(p Pos) {
	p = b.clamp(p)
	b.anchor = &p
}

// ClearAnchor снимает выделение
func (b *Buffer) ClearAnchor() {
	b.anchor = nil
}

// HasSelection есть ли непустое выделение
func (b *Buffer) HasSelection() bool {
	if b.anchor == nil {
		return false
	}
	return *b.anchor != b.cursor
}

// SelectionRange возвращает упорядоченные границы выделения
func (b *Buffer) SelectionRange() (Pos, Pos) {
	if !b.HasSelection() {
		return b.cursor, b.cursor
	}
	start := *b.anchor
	end := b.cursor
	if end.Before(start) {
		start, end = end, start
	}
	return start, end
}

// SelectAll выделяет весь текст
func (b *Buffer) SelectAll() {
	b.anchor = &Pos{}
	last := len(b.lines) - 1
	b.cursor = Pos{Line: last, Col: len(b.lines[last])}
}

// SelectedText возвращает выделенный текст с переводами строк LF
func (b *Buffer) SelectedText() string {
	if !b.HasSelection() {
		return ""
	}
	start, end := b.SelectionRange()
	return b.TextRange(start, end)
}

// TextRange возвращает текст между двумя позициями
func (b *Buffer) TextRange(start, end Pos) string {
	start, end = b.clamp(start), b.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Col:end.Col])
	}
	var builder strings.Builder
	builder.WriteString(string(b.lines[start.Line][start.Col:]))
	builder.WriteRune('\n')
	for line := start.Line + 1; line < end.Line; line++ {
		builder.WriteString(string(b.lines[line]))
		builder.WriteRune('\n')
	}
	builder.WriteString(string(b.lines[end.Line][:end.Col]))
	return builder.String()
}

// DeleteSelection удаляет выделенный текст и возвращает его
func (b *Buffer) DeleteSelection() string {
	if !b.HasSelection() {
		return ""
	}
	start, end := b.SelectionRange()
	return b.deleteRange(start, end)
}

func (b *Buffer) deleteRange(start, end Pos) string {
	removed := b.TextRange(start, end)
	if start.Line == end.Line {
		line := append([]rune{}, b.lines[start.Line]...)
		line = append(line[:start.Col], line[end.Col:]...)
		b.lines[start.Line] = line
	} else {
		head := append([]rune{}, b.lines[start.Line][:start.Col]...)
		tail := append([]rune{}, b.lines[end.Line][end.Col:]...)
		b.lines[start.Line] = append(head, tail...)
		b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	}
	b.cursor = start
	b.ClearAnchor()
	b.normalizeCursor()
	return removed
}

// ReplaceRange заменяет текст между позициями; каретка встает после вставки
func (b *Buffer) ReplaceRange(start, end Pos, text string) {
	start, end = b.clamp(start), b.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}
	b.deleteRange(start, end)
	b.InsertText(text)
}

func (b *Buffer) insertRune(r rune) {
	if r == '\n' {
		current := b.lines[b.cursor.Line]
		before := append([]rune{}, current[:b.cursor.Col]...)
		after := append([]rune{}, current[b.cursor.Col:]...)
		b.lines[b.cursor.Line] = before
		lineIndex := b.cursor.Line + 1
		b.lines = append(b.lines, nil)
		copy(b.lines[lineIndex+1:], b.lines[lineIndex:])
		b.lines[lineIndex] = after
		b.cursor.Line++
		b.cursor.Col = 0
		return
	}
	line := append([]rune{}, b.lines[b.cursor.Line]...)
	line = append(line[:b.cursor.Col], append([]rune{r}, line[b.cursor.Col:]...)...)
	b.lines[b.cursor.Line] = line
	b.cursor.Col++
}

// InsertText вставляет текст в позицию каретки, заменяя выделение
func (b *Buffer) InsertText(str string) {
	if b.HasSelection() {
		b.DeleteSelection()
	}
	b.ClearAnchor()
	str = strings.ReplaceAll(str, "\r\n", "\n")
	for len(str) > 0 {
		r, size := utf8.DecodeRuneInString(str)
		str = str[size:]
		if r == '\r' {
			r = '\n'
		}
		b.insertRune(r)
	}
}

// DeleteBackward удаляет символ перед кареткой (или выделение)
func (b *Buffer) DeleteBackward() string {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearAnchor()
	if b.cursor.Col > 0 {
		start := Pos{Line: b.cursor.Line, Col: b.cursor.Col - 1}
		return b.deleteRange(start, b.cursor)
	}
	if b.cursor.Line == 0 {
		return ""
	}
	start := Pos{Line: b.cursor.Line - 1, Col: len(b.lines[b.cursor.Line-1])}
	return b.deleteRange(start, b.cursor)
}

// DeleteForward удаляет символ после каретки (или выделение)
func (b *Buffer) DeleteForward() string {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearAnchor()
	if b.cursor.Col < len(b.lines[b.cursor.Line]) {
		end := Pos{Line: b.cursor.Line, Col: b.cursor.Col + 1}
		return b.deleteRange(b.cursor, end)
	}
	if b.cursor.Line >= len(b.lines)-1 {
		return ""
	}
	end := Pos{Line: b.cursor.Line + 1, Col: 0}
	return b.deleteRange(b.cursor, end)
}

// Text возвращает весь текст буфера
func (b *Buffer) Text() string {
	var builder strings.Builder
	for i, line := range b.lines {
		builder.WriteString(string(line))
		if i < len(b.lines)-1 {
			builder.WriteRune('\n')
		}
	}
	return builder.String()
}

// IsEmpty пустой ли документ
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// SetText заменяет содержимое; каретка переходит в начало
func (b *Buffer) SetText(content string) {
	b.cursor = Pos{}
	b.anchor = nil
	parts := strings.Split(content, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
}

func (b *Buffer) cloneLines() [][]rune {
	copyLines := make([][]rune, len(b.lines))
	for i, line := range b.lines {
		copyLines[i] = append([]rune{}, line...)
	}
	return copyLines
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
