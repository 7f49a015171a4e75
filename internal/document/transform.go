package document

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateTimeLayout формат вставки даты и времени
const DateTimeLayout = "15:04 02.01.2006"

// Transform преобразует фрагмент текста (переводы строк LF)
type Transform func(text string) string

// Apply применяет преобразование к выделению или ко всему документу.
// Пустой документ не меняется; изменение укладывается в один шаг отмены.
func (d *Document) Apply(fn Transform) bool {
	if d.IsEmpty() {
		return false
	}
	return d.Edit(func(b *Buffer) bool {
		if b.HasSelection() {
			start, end := b.SelectionRange()
			before := b.TextRange(start, end)
			after := fn(before)
			if after == before {
				return false
			}
			b.ReplaceRange(start, end, after)
			// результат остается выделенным
			cursor := b.Cursor()
			b.SetAnchorAt(start)
			b.MoveTo(cursor.Line, cursor.Col)
			return true
		}
		before := b.Text()
		after := fn(before)
		if after == before {
			return false
		}
		cursor := b.Cursor()
		b.SetText(after)
		b.MoveTo(cursor.Line, cursor.Col)
		return true
	})
}

// InsertDateTime вставляет текущие время и дату в позицию каретки
func (d *Document) InsertDateTime(now time.Time) bool {
	stamp := now.Format(DateTimeLayout)
	return d.Edit(func(b *Buffer) bool {
		b.InsertText(stamp)
		return true
	})
}

// Upper переводит текст в верхний регистр
func Upper(text string) string {
	return strings.ToUpper(text)
}

// Lower переводит текст в нижний регистр
func Lower(text string) string {
	return strings.ToLower(text)
}

// Title делает первую букву каждого слова заглавной, остальные строчными.
// Правила регистра не зависят от языка.
func Title(text string) string {
	return cases.Title(language.Und).String(text)
}

// TrimTrailing удаляет пробельные символы в конце каждой строки
func TrimTrailing(text string) string {
	return mapLines(text, func(line string) string {
		return strings.TrimRightFunc(line, unicode.IsSpace)
	})
}

// TrimLeading удаляет пробельные символы в начале каждой строки
func TrimLeading(text string) string {
	return mapLines(text, func(line string) string {
		return strings.TrimLeftFunc(line, unicode.IsSpace)
	})
}

// TabsToSpaces заменяет табуляции заданным числом пробелов
func TabsToSpaces(size int) Transform {
	if size < 1 {
		size = 1
	}
	spaces := strings.Repeat(" ", size)
	return func(text string) string {
		return strings.ReplaceAll(text, "\t", spaces)
	}
}

// RemoveSpaces удаляет все пробелы
func RemoveSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// JoinLines склеивает строки, убирая переводы строк
func JoinLines(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}

// RemoveEmptyLines удаляет пустые строки и строки из одних пробелов
func RemoveEmptyLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// RemoveDuplicateLines оставляет только первое вхождение каждой строки
func RemoveDuplicateLines(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// SortAscending сортирует строки по возрастанию кодовых точек
func SortAscending(text string) string {
	lines := strings.Split(text, "\n")
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// SortDescending сортирует строки по убыванию кодовых точек
func SortDescending(text string) string {
	lines := strings.Split(text, "\n")
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	return strings.Join(lines, "\n")
}

func mapLines(text string, fn func(string) string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
