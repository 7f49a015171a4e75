package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"notepad-tui/internal/textio"
)

func TestBufferInsertAndDelete(t *testing.T) {
	b := NewBuffer("")
	b.InsertText("ab\r\ncd")
	if got := b.Text(); got != "ab\ncd" {
		t.Fatalf("text: got %q", got)
	}
	if c := b.Cursor(); c != (Pos{Line: 1, Col: 2}) {
		t.Fatalf("cursor: got %+v", c)
	}
	b.MoveTo(1, 0)
	if removed := b.DeleteBackward(); removed != "\n" {
		t.Fatalf("removed %q", removed)
	}
	if got := b.Text(); got != "abcd" {
		t.Fatalf("after backspace: got %q", got)
	}
	b.MoveTo(0, 4)
	if removed := b.DeleteForward(); removed != "" {
		t.Fatalf("delete at end removed %q", removed)
	}
}

func TestBufferSelection(t *testing.T) {
	b := NewBuffer("hello\nworld")
	b.MoveTo(0, 3)
	b.SetAnchor()
	b.MoveTo(1, 2)
	if got := b.SelectedText(); got != "lo\nwo" {
		t.Fatalf("selected: got %q", got)
	}
	b.InsertText("X")
	if got := b.Text(); got != "helXrld" {
		t.Fatalf("replace selection: got %q", got)
	}
	b.SelectAll()
	if got := b.SelectedText(); got != "helXrld" {
		t.Fatalf("select all: got %q", got)
	}
}

func TestBufferWordMovement(t *testing.T) {
	b := NewBuffer("один два  three")
	b.MoveWordRight()
	if c := b.Cursor(); c.Col != 4 {
		t.Fatalf("word right: got %d", c.Col)
	}
	b.MoveWordRight()
	if c := b.Cursor(); c.Col != 8 {
		t.Fatalf("second word right: got %d", c.Col)
	}
	b.MoveWordLeft()
	if c := b.Cursor(); c.Col != 5 {
		t.Fatalf("word left: got %d", c.Col)
	}
}

func TestEditUndoRedo(t *testing.T) {
	d := New("Untitled1.txt")
	d.Edit(func(b *Buffer) bool { b.InsertText("abc"); return true })
	d.Edit(func(b *Buffer) bool { b.InsertText("def"); return true })
	if !d.Modified() {
		t.Fatalf("expected modified after edit")
	}
	if !d.Undo() || d.Text() != "abc" {
		t.Fatalf("undo: got %q", d.Text())
	}
	if !d.Undo() || d.Text() != "" {
		t.Fatalf("second undo: got %q", d.Text())
	}
	if d.Modified() {
		t.Fatalf("undo to the saved state should clear modified")
	}
	if d.Undo() {
		t.Fatalf("undo on empty history should fail")
	}
	if !d.Redo() || d.Text() != "abc" {
		t.Fatalf("redo: got %q", d.Text())
	}
	d.Edit(func(b *Buffer) bool { b.InsertText("!"); return true })
	if d.CanRedo() {
		t.Fatalf("new edit must clear redo history")
	}
}

func TestEditWithoutChangeKeepsState(t *testing.T) {
	d := New("a.txt")
	if d.Edit(func(b *Buffer) bool { return false }) {
		t.Fatalf("edit reported change")
	}
	if d.Modified() || d.CanUndo() {
		t.Fatalf("no-op edit must not touch state")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	d := New("a.txt")
	d.SetMaxHistory(3)
	for i := 0; i < 10; i++ {
		d.Edit(func(b *Buffer) bool { b.InsertText("x"); return true })
	}
	undone := 0
	for d.Undo() {
		undone++
	}
	if undone != 3 {
		t.Fatalf("undo steps: got %d, want 3", undone)
	}
}

func TestSetEncodingMarksModifiedOnlyWithText(t *testing.T) {
	d := New("a.txt")
	d.SetEncoding(textio.UTF16LE)
	d.SetLineEnding(textio.LF)
	if d.Modified() {
		t.Fatalf("empty document must stay unmodified")
	}
	d.Edit(func(b *Buffer) bool { b.InsertText("x"); return true })
	d.MarkSaved("a.txt")
	d.SetEncoding(textio.Windows1251)
	if !d.Modified() {
		t.Fatalf("encoding change should mark modified")
	}
	d.MarkSaved("a.txt")
	d.SetLineEnding(textio.CRLF)
	if !d.Modified() {
		t.Fatalf("line ending change should mark modified")
	}
}

func TestUndoPastSaveMarksModified(t *testing.T) {
	d := FromFile("a.txt", &textio.File{Text: "hello"})
	d.Buffer().MoveTo(0, 5)
	d.Edit(func(b *Buffer) bool { b.InsertText(" world"); return true })
	d.MarkSaved("a.txt")
	if d.Modified() {
		t.Fatalf("saved document reported modified")
	}

	d.Undo()
	if d.Text() != "hello" || !d.Modified() {
		t.Fatalf("after undo: text %q, modified %v; want %q, true", d.Text(), d.Modified(), "hello")
	}
	d.Redo()
	if d.Text() != "hello world" || d.Modified() {
		t.Fatalf("redo back to saved text: text %q, modified %v", d.Text(), d.Modified())
	}
	d.Redo()
	if d.Modified() {
		t.Fatalf("redo with empty stack changed state")
	}
}

func TestUndoToSavedStateIsClean(t *testing.T) {
	d := New("a.txt")
	d.Edit(func(b *Buffer) bool { b.InsertText("a"); return true })
	d.Edit(func(b *Buffer) bool { b.InsertText("b"); return true })
	d.Undo()
	d.Undo()
	if d.Modified() {
		t.Fatalf("undo back to the initial text must be clean")
	}
	d.Redo()
	if !d.Modified() {
		t.Fatalf("redo away from the clean state must be modified")
	}

	// новое изменение после отмены не совпадает с сохраненным поколением
	d.Undo()
	d.Edit(func(b *Buffer) bool { b.InsertText("c"); return true })
	d.Undo()
	if d.Modified() {
		t.Fatalf("undo of a fresh edit back to the clean state must be clean")
	}
}

func TestReloadMarksClean(t *testing.T) {
	d := FromFile("a.txt", &textio.File{Text: "old"})
	d.Edit(func(b *Buffer) bool { b.InsertText("x"); return true })
	d.SetEncoding(textio.UTF16LE)
	d.Reload(&textio.File{Text: "new"})
	if d.Modified() {
		t.Fatalf("reload must leave the document clean")
	}
	d.Edit(func(b *Buffer) bool { b.InsertText("y"); return true })
	if !d.Modified() {
		t.Fatalf("edit after reload must mark modified")
	}
}

func TestFormatForName(t *testing.T) {
	cases := map[string]Format{
		"notes.txt":     FormatText,
		"NOTES.TXT":     FormatText,
		"notes.Txt":     FormatOther,
		"main.go":       FormatOther,
		"README":        FormatOther,
		"Untitled1.txt": FormatText,
	}
	for name, want := range cases {
		if got := FormatForName(name); got != want {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestMarkSavedAndReload(t *testing.T) {
	d := New("Untitled1.txt")
	d.Edit(func(b *Buffer) bool { b.InsertText("draft"); return true })
	d.MarkSaved(filepath.Join("dir", "final.md"))
	if d.Modified() || d.Name != "final.md" || d.Format != FormatOther {
		t.Fatalf("unexpected state after save: %+v", d.State())
	}
	d.Reload(&textio.File{Text: "fresh\ntext", Encoding: textio.UTF8BOM, LineEnding: textio.LF})
	if d.Text() != "fresh\ntext" || d.Encoding != textio.UTF8BOM || d.LineEnding != textio.LF {
		t.Fatalf("reload did not apply file data")
	}
	if d.CanUndo() {
		t.Fatalf("reload must reset history")
	}
}

func TestTransformsOnWholeDocument(t *testing.T) {
	cases := []struct {
		name string
		fn   Transform
		in   string
		want string
	}{
		{"sort asc", SortAscending, "b\na\nc", "a\nb\nc"},
		{"sort desc", SortDescending, "b\na\nc", "c\nb\na"},
		{"dedup", RemoveDuplicateLines, "line1\nline1\nline2", "line1\nline2"},
		{"dedup keeps order", RemoveDuplicateLines, "b\na\nb\nc\na", "b\na\nc"},
		{"upper", Upper, "Привет world", "ПРИВЕТ WORLD"},
		{"lower", Lower, "Привет WORLD", "привет world"},
		{"title", Title, "hELLO wORLD привет", "Hello World Привет"},
		{"trim trailing", TrimTrailing, "a  \nb\t\n c ", "a\nb\n c"},
		{"trim leading", TrimLeading, "  a\n\tb\n   ", "a\nb\n"},
		{"tabs", TabsToSpaces(4), "\ta\tb", "    a    b"},
		{"remove spaces", RemoveSpaces, "a b  c\nd e", "abc\nde"},
		{"join", JoinLines, "a\nb\nc", "abc"},
		{"remove empty", RemoveEmptyLines, "a\n\n  \nb\n", "a\nb"},
	}
	for _, tc := range cases {
		d := New("a.txt")
		d.Buffer().SetText(tc.in)
		d.Apply(tc.fn)
		if got := d.Text(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestApplyToSelectionOnly(t *testing.T) {
	d := New("a.txt")
	d.Buffer().SetText("keep\nb\na\nkeep")
	b := d.Buffer()
	b.MoveTo(1, 0)
	b.SetAnchor()
	b.MoveTo(2, 1)
	if !d.Apply(SortAscending) {
		t.Fatalf("expected change")
	}
	if got := d.Text(); got != "keep\na\nb\nkeep" {
		t.Fatalf("got %q", got)
	}
	if got := b.SelectedText(); got != "a\nb" {
		t.Fatalf("result should stay selected, got %q", got)
	}
	d.Undo()
	if got := d.Text(); got != "keep\nb\na\nkeep" {
		t.Fatalf("undo: got %q", got)
	}
}

func TestApplyOnEmptyDocumentIsNoop(t *testing.T) {
	d := New("a.txt")
	if d.Apply(Upper) || d.Modified() {
		t.Fatalf("transform on empty document must be a no-op")
	}
}

func TestInsertDateTime(t *testing.T) {
	d := New("a.txt")
	d.InsertDateTime(time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC))
	if got := d.Text(); got != "09:05 07.03.2024" {
		t.Fatalf("got %q", got)
	}
}

func TestFindWrapsAround(t *testing.T) {
	d := New("a.txt")
	d.Buffer().SetText("foo bar\nbar foo")
	d.Buffer().MoveTo(1, 4)
	opts := FindOptions{WrapAround: true}
	if !d.Find("bar", opts) {
		t.Fatalf("expected wrap-around match")
	}
	start, end := d.Buffer().SelectionRange()
	if start != (Pos{0, 4}) || end != (Pos{0, 7}) {
		t.Fatalf("match at %+v-%+v", start, end)
	}

	d.Buffer().ClearAnchor()
	d.Buffer().MoveTo(1, 4)
	if d.Find("bar", FindOptions{}) {
		t.Fatalf("match without wrap-around")
	}
}

func TestFindOptions(t *testing.T) {
	b := NewBuffer("Cat concat cat")
	if m, ok := b.FindFrom(Pos{}, "cat", FindOptions{CaseSensitive: true}); !ok || m.Start.Col != 7 {
		t.Fatalf("case sensitive: %+v %v", m, ok)
	}
	if m, ok := b.FindFrom(Pos{}, "cat", FindOptions{}); !ok || m.Start.Col != 0 {
		t.Fatalf("case insensitive: %+v %v", m, ok)
	}
	if m, ok := b.FindFrom(Pos{Line: 0, Col: 1}, "cat", FindOptions{WholeWord: true}); !ok || m.Start.Col != 11 {
		t.Fatalf("whole word: %+v %v", m, ok)
	}
}

func TestReplaceAndReplaceAll(t *testing.T) {
	d := New("a.txt")
	d.Buffer().SetText("a-a-a")
	opts := FindOptions{CaseSensitive: true}
	d.Find("a", opts)
	d.Replace("a", "bb", opts)
	if got := d.Text(); got != "bb-a-a" {
		t.Fatalf("replace: got %q", got)
	}
	if got := d.Buffer().SelectedText(); got != "a" {
		t.Fatalf("replace should select next match, got %q", got)
	}
	if n := d.ReplaceAll("a", "c", opts); n != 2 {
		t.Fatalf("replace all count: got %d", n)
	}
	if got := d.Text(); got != "bb-c-c" {
		t.Fatalf("replace all: got %q", got)
	}
	d.Undo()
	if got := d.Text(); got != "bb-a-a" {
		t.Fatalf("replace all should be one undo step, got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	d := New("a.txt")
	d.Buffer().SetText("one two\nthree")
	d.LineEnding = textio.CRLF
	b := d.Buffer()
	b.MoveTo(0, 4)
	b.SetAnchor()
	b.MoveTo(1, 2)
	s := d.Summarize()
	if s.Chars != 12 || s.Words != 3 || s.Lines != 2 || s.Length != 14 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.SelChars != 5 || s.SelBytes != 7 || s.SelRanges != 1 {
		t.Fatalf("unexpected selection summary: %+v", s)
	}
	if s.HasFileDetail {
		t.Fatalf("untitled document has no file details")
	}
}

func TestLengthFollowsLineEnding(t *testing.T) {
	cases := []struct {
		text string
		le   textio.LineEnding
		want int
	}{
		{"", textio.CRLF, 0},
		{"абв", textio.CRLF, 3},
		{"one two\nthree", textio.CRLF, 14},
		{"one two\nthree", textio.LF, 13},
		{"a\n\n", textio.CRLF, 5},
	}
	for _, c := range cases {
		d := New("a.txt")
		d.Buffer().SetText(c.text)
		d.LineEnding = c.le
		if got := d.Length(); got != c.want {
			t.Fatalf("%q/%s: got %d, want %d", c.text, c.le, got, c.want)
		}
		if got := d.Summarize().Length; got != c.want {
			t.Fatalf("%q/%s summary: got %d, want %d", c.text, c.le, got, c.want)
		}
	}
}

func TestSummarizeFileDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	d := New("a.txt")
	d.Path = path
	s := d.Summarize()
	if !s.HasFileDetail || s.FullPath != path || s.ModTime.IsZero() {
		t.Fatalf("unexpected file details: %+v", s)
	}
}

func TestDiffLines(t *testing.T) {
	got := DiffLines("a\nb\nc\n", "a\nB\nc\nd\n")
	if got.Added != 2 || got.Removed != 1 {
		t.Fatalf("got %s", got)
	}
	if got.String() != "+2/-1 lines" {
		t.Fatalf("string: got %q", got.String())
	}
	if !DiffLines("same", "same").Empty() {
		t.Fatalf("identical texts should have no changes")
	}
}
