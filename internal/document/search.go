package document

import (
	"strings"
	"unicode"
)

// FindOptions параметры поиска
type FindOptions struct {
	CaseSensitive bool
	WholeWord     bool
	WrapAround    bool
}

// Match найденное вхождение
type Match struct {
	Start Pos
	End   Pos
}

// FindFrom ищет первое вхождение query начиная с позиции from.
// Поиск идет вперед; при WrapAround продолжается с начала документа.
// Вхождения не переходят через границу строки.
func (b *Buffer) FindFrom(from Pos, query string, opts FindOptions) (Match, bool) {
	q := []rune(query)
	if len(q) == 0 || strings.ContainsRune(query, '\n') {
		return Match{}, false
	}
	from = b.clamp(from)
	for line := from.Line; line < len(b.lines); line++ {
		start := 0
		if line == from.Line {
			start = from.Col
		}
		if col, ok := b.indexIn(line, start, len(b.lines[line]), q, opts); ok {
			return matchAt(line, col, len(q)), true
		}
	}
	if !opts.WrapAround {
		return Match{}, false
	}
	for line := 0; line <= from.Line; line++ {
		limit := len(b.lines[line])
		if line == from.Line {
			limit = min(from.Col-1, limit)
		}
		if col, ok := b.indexIn(line, 0, limit, q, opts); ok {
			return matchAt(line, col, len(q)), true
		}
	}
	return Match{}, false
}

// FindAll возвращает все непересекающиеся вхождения в порядке следования
func (b *Buffer) FindAll(query string, opts FindOptions) []Match {
	q := []rune(query)
	if len(q) == 0 || strings.ContainsRune(query, '\n') {
		return nil
	}
	var matches []Match
	for line := range b.lines {
		col := 0
		for {
			found, ok := b.indexIn(line, col, len(b.lines[line]), q, opts)
			if !ok {
				break
			}
			matches = append(matches, matchAt(line, found, len(q)))
			col = found + len(q)
		}
	}
	return matches
}

// indexIn ищет q в строке line среди начальных колонок [from, limit]
func (b *Buffer) indexIn(line, from, limit int, q []rune, opts FindOptions) (int, bool) {
	runes := b.lines[line]
	last := min(limit, len(runes)-len(q))
	for col := from; col <= last; col++ {
		if !runesEqual(runes[col:col+len(q)], q, opts.CaseSensitive) {
			continue
		}
		if opts.WholeWord && !IsWholeWord(runes, col, col+len(q)) {
			continue
		}
		return col, true
	}
	return 0, false
}

func matchAt(line, col, length int) Match {
	return Match{Start: Pos{Line: line, Col: col}, End: Pos{Line: line, Col: col + length}}
}

func runesEqual(a, b []rune, caseSensitive bool) bool {
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if caseSensitive || unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

// IsWholeWord окружено ли вхождение [start, end) символами, не входящими в слово
func IsWholeWord(line []rune, start, end int) bool {
	if start > 0 && isWordRune(line[start-1]) {
		return false
	}
	if end < len(line) && isWordRune(line[end]) {
		return false
	}
	return true
}

// Find выделяет следующее вхождение после каретки или текущего выделения
func (d *Document) Find(query string, opts FindOptions) bool {
	_, from := d.buf.SelectionRange()
	m, ok := d.buf.FindFrom(from, query, opts)
	if !ok {
		return false
	}
	d.buf.SetAnchorAt(m.Start)
	d.buf.MoveTo(m.End.Line, m.End.Col)
	return true
}

// Replace заменяет выделение, если оно совпадает с query, и ищет следующее вхождение
func (d *Document) Replace(query, replacement string, opts FindOptions) bool {
	if query == "" {
		return false
	}
	selected := d.buf.SelectedText()
	same := selected == query
	if !opts.CaseSensitive {
		same = strings.EqualFold(selected, query)
	}
	if selected != "" && same {
		d.Edit(func(b *Buffer) bool {
			b.InsertText(replacement)
			return true
		})
	}
	return d.Find(query, opts)
}

// ReplaceAll заменяет все вхождения одним шагом отмены и возвращает их количество
func (d *Document) ReplaceAll(query, replacement string, opts FindOptions) int {
	matches := d.buf.FindAll(query, opts)
	if len(matches) == 0 {
		return 0
	}
	d.Edit(func(b *Buffer) bool {
		for i := len(matches) - 1; i >= 0; i-- {
			b.ReplaceRange(matches[i].Start, matches[i].End, replacement)
		}
		return true
	})
	return len(matches)
}
