package textio

import "strings"

// LineEnding стиль перевода строки документа
type LineEnding int

const (
	CRLF LineEnding = iota
	LF
)

// String возвращает название для статус-бара
func (l LineEnding) String() string {
	if l == LF {
		return "Unix (LF)"
	}
	return "Windows (CR LF)"
}

// Sequence возвращает байтовую последовательность перевода строки
func (l LineEnding) Sequence() string {
	if l == LF {
		return "\n"
	}
	return "\r\n"
}

// DetectLineEnding ищет CRLF, затем LF. ok=false, если переводов строки нет.
func DetectLineEnding(text string) (LineEnding, bool) {
	if strings.Contains(text, "\r\n") {
		return CRLF, true
	}
	if strings.Contains(text, "\n") {
		return LF, true
	}
	return CRLF, false
}

// NormalizeNewlines приводит CRLF и одиночные CR к LF
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// JoinLines переводит внутренний LF-текст в стиль документа
func JoinLines(text string, le LineEnding) string {
	if le == LF {
		return text
	}
	return strings.ReplaceAll(text, "\n", le.Sequence())
}
