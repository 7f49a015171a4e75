package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"notepad-tui/internal/document"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/textio"
)

func newManager() *Manager {
	return NewManager(Options{ZoomBase: 12})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewManagerStartsWithUntitled(t *testing.T) {
	m := newManager()
	if m.Len() != 1 || m.Active().Doc.Name != "Untitled1.txt" {
		t.Fatalf("unexpected initial tabs: %d %q", m.Len(), m.Active().Doc.Name)
	}
	m.New()
	if got := m.Active().Doc.Name; got != "Untitled2.txt" {
		t.Fatalf("got %q", got)
	}
}

func TestClosingLastTabOpensFreshUntitled(t *testing.T) {
	m := newManager()
	m.New()
	m.ForceClose(1)
	m.ForceClose(0)
	if m.Len() != 1 || m.Active().Doc.Name != "Untitled1.txt" {
		t.Fatalf("got %d tabs, active %q", m.Len(), m.Active().Doc.Name)
	}
}

func TestCloseModifiedRequiresPrompt(t *testing.T) {
	m := newManager()
	m.Active().Editor.InsertText("draft")
	if err := m.Close(0); !errors.Is(err, ErrUnsaved) {
		t.Fatalf("got %v, want ErrUnsaved", err)
	}
	if m.Active().Doc.Text() != "draft" {
		t.Fatalf("cancel must keep the tab")
	}
	if got := m.ModifiedTabs(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("modified tabs: %v", got)
	}
	m.ForceClose(0)
	if m.Active().Doc.Modified() || !m.Active().Doc.IsEmpty() {
		t.Fatalf("discard must close the modified tab")
	}
}

func TestUndoAfterSaveRequiresPrompt(t *testing.T) {
	path := writeFile(t, "a.txt", "hello")
	m := newManager()
	tab, err := m.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	i := m.IndexOf(path)
	tab.Doc.Buffer().MoveTo(0, 5)
	tab.Editor.InsertText(" world")
	if err := m.Save(i); err != nil {
		t.Fatal(err)
	}
	tab.Editor.Undo()

	if got := tab.Doc.Text(); got != "hello" {
		t.Fatalf("buffer after undo: got %q", got)
	}
	if err := m.Close(i); !errors.Is(err, ErrUnsaved) {
		t.Fatalf("close after undo past save: got %v, want ErrUnsaved", err)
	}
	if got := m.ModifiedTabs(); len(got) != 1 || got[0] != i {
		t.Fatalf("modified tabs: got %v, want [%d]", got, i)
	}
}

func TestOpenAlreadyOpenSwitchesTab(t *testing.T) {
	path := writeFile(t, "a.txt", "one\r\ntwo")
	m := newManager()
	tab, err := m.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Doc.LineEnding != textio.CRLF || tab.Doc.Text() != "one\ntwo" {
		t.Fatalf("unexpected document: %q %v", tab.Doc.Text(), tab.Doc.LineEnding)
	}
	m.Select(0)
	again, err := m.Open(path)
	if !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("got %v, want ErrAlreadyOpen", err)
	}
	if again != tab || m.ActiveIndex() != 1 || m.Len() != 2 {
		t.Fatalf("expected switch to the open tab, active %d of %d", m.ActiveIndex(), m.Len())
	}
}

func TestOpenMissingFileReturnsIOError(t *testing.T) {
	m := newManager()
	_, err := m.Open(filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *textio.Error
	if !errors.As(err, &ioErr) || ioErr.Op != "read" {
		t.Fatalf("got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("failed open must not add a tab")
	}
}

func TestSaveUntitledNeedsPath(t *testing.T) {
	m := newManager()
	if err := m.Save(0); !errors.Is(err, ErrNeedsPath) {
		t.Fatalf("got %v", err)
	}
	path := filepath.Join(t.TempDir(), "note.txt")
	m.Active().Editor.InsertText("a\nb")
	if err := m.SaveAs(0, path); err != nil {
		t.Fatal(err)
	}
	doc := m.Active().Doc
	if doc.Modified() || doc.Untitled() || doc.Name != "note.txt" || doc.Format != document.FormatText {
		t.Fatalf("unexpected state after save: %+v", doc.State())
	}
	data, _ := os.ReadFile(path)
	if string(data) != "a\r\nb" {
		t.Fatalf("file content %q", data)
	}
	if m.Recent().List()[0] != path {
		t.Fatalf("saved file must be the most recent")
	}
}

func TestSaveAsPathOpenElsewhere(t *testing.T) {
	path := writeFile(t, "a.txt", "x")
	m := newManager()
	if _, err := m.Open(path); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveAs(0, path); !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("got %v", err)
	}
}

func TestRecentFilesMoveToFront(t *testing.T) {
	recent := settings.NewRecentFiles(settings.MaxRecentFiles)
	m := NewManager(Options{Recent: recent})
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"1.txt", "2.txt", "3.txt", "4.txt", "5.txt", "6.txt"} {
		p := filepath.Join(dir, name)
		os.WriteFile(p, []byte(name), 0644)
		paths = append(paths, p)
		if _, err := m.Open(p); err != nil {
			t.Fatal(err)
		}
	}
	if recent.Len() != settings.MaxRecentFiles || recent.List()[0] != paths[5] {
		t.Fatalf("recent: %v", recent.List())
	}
	m.ForceClose(m.IndexOf(paths[2]))
	if _, err := m.Open(paths[2]); err != nil {
		t.Fatal(err)
	}
	if recent.List()[0] != paths[2] {
		t.Fatalf("re-open must move to front: %v", recent.List())
	}
}

func TestReloadReportsChanges(t *testing.T) {
	path := writeFile(t, "a.txt", "one\ntwo\n")
	m := newManager()
	tab, err := m.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	os.WriteFile(path, []byte("one\nthree\nfour\n"), 0644)
	changes, err := m.Reload(m.ActiveIndex())
	if err != nil {
		t.Fatal(err)
	}
	if changes.Added != 2 || changes.Removed != 1 {
		t.Fatalf("changes: %+v", changes)
	}
	if tab.Doc.Text() != "one\nthree\nfour\n" || tab.Doc.Modified() {
		t.Fatalf("reload: %q modified=%v", tab.Doc.Text(), tab.Doc.Modified())
	}
}

func TestReopenWithEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cp.txt")
	if err := textio.Write(path, "привет", textio.Windows1251, textio.LF); err != nil {
		t.Fatal(err)
	}
	m := newManager()
	if _, err := m.Open(path); err != nil {
		t.Fatal(err)
	}
	if _, err := m.ReopenWithEncoding(m.ActiveIndex(), textio.Windows1251); err != nil {
		t.Fatal(err)
	}
	doc := m.Active().Doc
	if doc.Text() != "привет" || doc.Encoding != textio.Windows1251 {
		t.Fatalf("got %q in %v", doc.Text(), doc.Encoding)
	}
}

func TestRenameMovesFileOnDisk(t *testing.T) {
	path := writeFile(t, "old.txt", "x")
	m := newManager()
	if _, err := m.Open(path); err != nil {
		t.Fatal(err)
	}
	if err := m.Rename(m.ActiveIndex(), "new.md"); err != nil {
		t.Fatal(err)
	}
	newPath := filepath.Join(filepath.Dir(path), "new.md")
	if _, err := os.Stat(newPath); err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}
	doc := m.Active().Doc
	if doc.Path != newPath || doc.Format != document.FormatOther {
		t.Fatalf("unexpected doc: %q %v", doc.Path, doc.Format)
	}
	if err := m.Rename(0, "a/b.txt"); err == nil {
		t.Fatalf("names with separators must be rejected")
	}
}

func TestZoomAppliesToAllTabsAndNewTabs(t *testing.T) {
	m := newManager()
	m.ZoomIn()
	m.ZoomIn()
	tab := m.New()
	if tab.Doc.Zoom != 2 || m.Tab(0).Doc.Zoom != 2 {
		t.Fatalf("zoom: %d %d", tab.Doc.Zoom, m.Tab(0).Doc.Zoom)
	}
	if m.ZoomPercent() != 116 {
		t.Fatalf("percent: %d", m.ZoomPercent())
	}
	for i := 0; i < 20; i++ {
		m.ZoomOut()
	}
	if m.Zoom() != -6 {
		t.Fatalf("min zoom: %d", m.Zoom())
	}
	m.ZoomRestore()
	if m.Zoom() != 0 {
		t.Fatalf("restore: %d", m.Zoom())
	}
}

func TestNextPrevWrap(t *testing.T) {
	m := newManager()
	m.New()
	m.New()
	m.Next()
	if m.ActiveIndex() != 0 {
		t.Fatalf("next wraps to 0, got %d", m.ActiveIndex())
	}
	m.Prev()
	if m.ActiveIndex() != 2 {
		t.Fatalf("prev wraps to 2, got %d", m.ActiveIndex())
	}
	if !m.Active().Editor.Focused() || m.Tab(0).Editor.Focused() {
		t.Fatalf("only the active editor is focused")
	}
}

func TestEventsPublished(t *testing.T) {
	m := newManager()
	var kinds []EventKind
	m.SetListener(func(e Event) { kinds = append(kinds, e.Kind) })
	path := writeFile(t, "a.txt", "x")
	m.Open(path)
	m.Save(m.ActiveIndex())
	m.Reload(m.ActiveIndex())
	m.ForceClose(m.ActiveIndex())
	want := []EventKind{EventOpened, EventSaved, EventReloaded, EventClosed}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}
