package document

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineChanges количество добавленных и удаленных строк
type LineChanges struct {
	Added   int
	Removed int
}

// Empty нет ли изменений
func (c LineChanges) Empty() bool {
	return c.Added == 0 && c.Removed == 0
}

func (c LineChanges) String() string {
	return fmt.Sprintf("+%d/-%d lines", c.Added, c.Removed)
}

// DiffLines сравнивает два текста построчно
func DiffLines(before, after string) LineChanges {
	var changes LineChanges
	if before == after {
		return changes
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			changes.Added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			changes.Removed += countLines(d.Text)
		}
	}
	return changes
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
