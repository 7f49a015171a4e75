package document

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Summary сводка по документу
type Summary struct {
	Chars         int // символы без переводов строк
	Words         int
	Lines         int
	Length        int // длина с учетом стиля перевода строк
	SelChars      int
	SelBytes      int // размер выделения в UTF-8
	SelRanges     int
	FullPath      string
	ModTime       time.Time
	HasFileDetail bool
}

// Length длина документа в символах с учетом стиля перевода строк.
// Считается по длинам строк, без сборки текста.
func (d *Document) Length() int {
	lines := d.buf.LineCount()
	n := (lines - 1) * len(d.LineEnding.Sequence())
	for i := 0; i < lines; i++ {
		n += d.buf.LineLength(i)
	}
	return n
}

// Summarize собирает статистику документа для окна «Сводка»
func (d *Document) Summarize() Summary {
	text := d.buf.Text()
	lines := d.buf.LineCount()
	newlines := lines - 1

	s := Summary{
		Chars:  utf8.RuneCountInString(text) - newlines,
		Words:  len(strings.Fields(text)),
		Lines:  lines,
		Length: d.Length(),
	}

	if selected := d.buf.SelectedText(); selected != "" {
		s.SelRanges = 1
		s.SelChars = utf8.RuneCountInString(strings.ReplaceAll(selected, "\n", ""))
		s.SelBytes = len(strings.ReplaceAll(selected, "\n", d.LineEnding.Sequence()))
	}

	if d.Path != "" {
		if info, err := os.Stat(d.Path); err == nil {
			if abs, err := filepath.Abs(d.Path); err == nil {
				s.FullPath = abs
			} else {
				s.FullPath = d.Path
			}
			s.ModTime = info.ModTime()
			s.HasFileDetail = true
		}
	}
	return s
}
