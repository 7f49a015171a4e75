package editor

import (
	"regexp"
	"unicode/utf8"

	"notepad-tui/internal/document"
)

// Span диапазон колонок (в рунах) внутри строки
type Span struct {
	Start int
	End   int
}

// SearchHighlighter подсвечивает совпадения шаблона в видимых строках
type SearchHighlighter struct {
	pattern   string
	re        *regexp.Regexp
	wholeWord bool // совпадения внутри слова отбрасываются
}

// Seed подсвечивает все вхождения выделенного текста; пустое выделение снимает подсветку
func (h *SearchHighlighter) Seed(selection string) {
	if selection == "" {
		h.Clear()
		return
	}
	h.pattern = selection
	h.re = regexp.MustCompile(regexp.QuoteMeta(selection))
	h.wholeWord = false
}

// SetPattern задает регулярное выражение для подсветки
func (h *SearchHighlighter) SetPattern(expr string) error {
	if expr == "" {
		h.Clear()
		return nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	h.pattern = expr
	h.re = re
	h.wholeWord = false
	return nil
}

// SetQuery подсвечивает строку поиска с теми же правилами, что и «Найти далее»
func (h *SearchHighlighter) SetQuery(query string, opts document.FindOptions) error {
	expr := ""
	if query != "" {
		expr = regexp.QuoteMeta(query)
		if !opts.CaseSensitive {
			expr = "(?i)" + expr
		}
	}
	if expr == h.Pattern() && h.wholeWord == opts.WholeWord {
		return nil
	}
	if err := h.SetPattern(expr); err != nil {
		return err
	}
	h.wholeWord = opts.WholeWord && expr != ""
	return nil
}

// Clear снимает подсветку
func (h *SearchHighlighter) Clear() {
	h.pattern = ""
	h.re = nil
	h.wholeWord = false
}

// Pattern текущий шаблон
func (h *SearchHighlighter) Pattern() string {
	return h.pattern
}

// Active есть ли что подсвечивать
func (h *SearchHighlighter) Active() bool {
	return h.re != nil
}

// Spans возвращает диапазоны всех совпадений в строке
func (h *SearchHighlighter) Spans(line string) []Span {
	if h.re == nil || line == "" {
		return nil
	}
	matches := h.re.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}
	var runes []rune
	if h.wholeWord {
		runes = []rune(line)
	}
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		if m[0] == m[1] {
			continue
		}
		start := utf8.RuneCountInString(line[:m[0]])
		span := Span{Start: start, End: start + utf8.RuneCountInString(line[m[0]:m[1]])}
		if h.wholeWord && !document.IsWholeWord(runes, span.Start, span.End) {
			continue
		}
		spans = append(spans, span)
	}
	return spans
}
