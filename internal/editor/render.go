package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"notepad-tui/internal/document"
)

type visualRow struct {
	line  int // -1 для строк за концом документа
	start int
	end   int
	first bool // первая строка блока
}

type cellKind int

const (
	kindText cellKind = iota
	kindCurrentLine
	kindSearch
	kindSelection
	kindCursor
)

// View отрисовывает гаттер и видимую часть документа
func (m *Model) View() string {
	rows := m.layout()
	current := m.doc.Buffer().Cursor().Line
	gutter := m.gutter.Render(blocksOf(rows), len(rows), current)
	width := m.contentWidth()

	var builder strings.Builder
	for i, row := range rows {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(gutter[i])
		builder.WriteString(m.renderRow(row, width))
	}
	return builder.String()
}

// layout раскладывает видимые строки документа по строкам экрана
func (m *Model) layout() []visualRow {
	height := max(m.height, 1)
	rows := make([]visualRow, 0, height)
	b := m.doc.Buffer()
	for line := m.top; line < b.LineCount() && len(rows) < height; line++ {
		for i, seg := range m.segments(line) {
			if len(rows) == height {
				break
			}
			rows = append(rows, visualRow{line: line, start: seg.Start, end: seg.End, first: i == 0})
		}
	}
	for len(rows) < height {
		rows = append(rows, visualRow{line: -1})
	}
	return rows
}

func blocksOf(rows []visualRow) []Block {
	var blocks []Block
	for i, row := range rows {
		if row.line < 0 {
			break
		}
		if row.first || len(blocks) == 0 {
			blocks = append(blocks, Block{Number: row.line, Top: i, Height: 1})
			continue
		}
		blocks[len(blocks)-1].Height++
	}
	return blocks
}

// segments делит строку на части, помещающиеся в ширину текстовой области
func (m *Model) segments(line int) []Span {
	runes := m.doc.Buffer().LineRunes(line)
	width := m.contentWidth()
	if !m.cfg.Wrap {
		start := min(m.left, len(runes))
		end, used := start, 0
		for end < len(runes) {
			w := m.cellWidth(runes[end])
			if used+w > width {
				break
			}
			used += w
			end++
		}
		return []Span{{Start: start, End: end}}
	}

	var spans []Span
	start, used := 0, 0
	for i, r := range runes {
		w := m.cellWidth(r)
		if used+w > width && i > start {
			spans = append(spans, Span{Start: start, End: i})
			start, used = i, 0
		}
		used += w
	}
	spans = append(spans, Span{Start: start, End: len(runes)})
	if used >= width {
		// каретке в конце заполненной строки нужна своя ячейка
		spans = append(spans, Span{Start: len(runes), End: len(runes)})
	}
	return spans
}

// segmentIndex номер части строки, в которой стоит позиция
func (m *Model) segmentIndex(p document.Pos) int {
	spans := m.segments(p.Line)
	idx := 0
	for i, s := range spans {
		if s.Start <= p.Col {
			idx = i
		}
	}
	return idx
}

func (m *Model) cellWidth(r rune) int {
	if r == '\t' {
		return m.cfg.TabSize
	}
	if unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func (m *Model) widthOf(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += m.cellWidth(r)
	}
	return total
}

func (m *Model) glyph(r rune) string {
	switch {
	case r == '\t':
		if m.cfg.ShowWhitespace {
			return "→" + strings.Repeat(" ", m.cfg.TabSize-1)
		}
		return strings.Repeat(" ", m.cfg.TabSize)
	case r == ' ' && m.cfg.ShowWhitespace:
		return "·"
	case unicode.IsControl(r):
		return "?"
	}
	return string(r)
}

func (m *Model) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case kindCurrentLine:
		return m.style.CurrentLine.Inherit(m.style.Text)
	case kindSearch:
		return m.style.Search.Inherit(m.style.Text)
	case kindSelection:
		return m.style.Selection.Inherit(m.style.Text)
	case kindCursor:
		return m.style.Cursor.Inherit(m.style.Text)
	}
	return m.style.Text
}

func (m *Model) renderRow(row visualRow, width int) string {
	if row.line < 0 {
		return m.style.Text.Render(strings.Repeat(" ", width))
	}
	b := m.doc.Buffer()
	runes := b.LineRunes(row.line)
	cursor := b.Cursor()

	base := kindText
	for _, sel := range m.ExtraSelections() {
		if sel.Line == row.line && sel.FullWidth {
			base = kindCurrentLine
		}
	}

	spans := m.search.Spans(string(runes))
	selStart, selEnd := b.SelectionRange()
	hasSel := b.HasSelection()
	showCursor := m.focused && cursor.Line == row.line

	kindAt := func(col int) cellKind {
		pos := document.Pos{Line: row.line, Col: col}
		if showCursor && col == cursor.Col {
			return kindCursor
		}
		if hasSel && !pos.Before(selStart) && pos.Before(selEnd) {
			return kindSelection
		}
		for _, s := range spans {
			if col >= s.Start && col < s.End {
				return kindSearch
			}
		}
		return base
	}

	var builder strings.Builder
	used := 0
	runKind, runWS := cellKind(-1), false
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := m.styleFor(runKind)
		if runWS {
			style = m.style.Whitespace.Inherit(style)
		}
		builder.WriteString(style.Render(run.String()))
		run.Reset()
	}
	for col := row.start; col < row.end; col++ {
		r := runes[col]
		kind := kindAt(col)
		ws := m.cfg.ShowWhitespace && (r == ' ' || r == '\t')
		if kind != runKind || ws != runWS {
			flush()
			runKind, runWS = kind, ws
		}
		run.WriteString(m.glyph(r))
		used += m.cellWidth(r)
	}
	flush()

	// каретка за последним символом
	if showCursor && cursor.Col == row.end && used < width && m.segmentIndex(cursor) == m.rowSegment(row) {
		builder.WriteString(m.styleFor(kindCursor).Render(" "))
		used++
	}
	if used < width {
		builder.WriteString(m.styleFor(base).Render(strings.Repeat(" ", width-used)))
	}
	return builder.String()
}

func (m *Model) rowSegment(row visualRow) int {
	return m.segmentIndex(document.Pos{Line: row.line, Col: row.start})
}
