package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListingSortsDirsFirstAndHidesDotfiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "A.md"))
	touch(t, filepath.Join(dir, ".hidden"))
	os.Mkdir(filepath.Join(dir, "zdir"), 0755)

	l, err := NewListing(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range l.Entries {
		names = append(names, e.DisplayName())
	}
	want := []string{"../", "zdir/", "A.md", "b.txt"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}

	if err := l.SetTextOnly(true); err != nil {
		t.Fatal(err)
	}
	if len(l.Entries) != 3 || l.Entries[2].Name != "b.txt" {
		t.Fatalf("text filter: %+v", l.Entries)
	}
	if err := l.SetShowHidden(true); err != nil {
		t.Fatal(err)
	}
	if len(l.Entries) != 3 {
		t.Fatalf(".hidden is not a txt file: %+v", l.Entries)
	}
}

func TestListingEnterAndUp(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	touch(t, filepath.Join(sub, "note.txt"))

	l, err := NewListing(dir)
	if err != nil {
		t.Fatal(err)
	}
	l.SetSelected(1)
	if path, err := l.Enter(); err != nil || path != "" {
		t.Fatalf("entering a dir: %q %v", path, err)
	}
	if l.Dir != sub {
		t.Fatalf("dir: got %q", l.Dir)
	}
	l.Move(5)
	path, err := l.Enter()
	if err != nil || path != filepath.Join(sub, "note.txt") {
		t.Fatalf("file: %q %v", path, err)
	}
	if err := l.Up(); err != nil {
		t.Fatal(err)
	}
	if l.Dir != dir || l.Current().Path != sub {
		t.Fatalf("up must select the previous dir: %q %+v", l.Dir, l.Current())
	}
}

func TestWatcherFiltersUntrackedAndSuppressed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	touch(t, path)

	fw, err := NewFileWatcher(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		t.Fatal(err)
	}
	if !fw.Watched(path) {
		t.Fatalf("file must be watched")
	}
	if _, ok := fw.filter(fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}); ok {
		t.Fatalf("untracked file passed the filter")
	}
	ev, ok := fw.filter(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if !ok || ev.Operation != FileModified {
		t.Fatalf("tracked write: %+v %v", ev, ok)
	}

	now := time.Now()
	fw.now = func() time.Time { return now }
	fw.Suppress(path)
	if _, ok := fw.filter(fsnotify.Event{Name: path, Op: fsnotify.Write}); ok {
		t.Fatalf("suppressed event passed the filter")
	}
	now = now.Add(2 * SuppressWindow)
	if _, ok := fw.filter(fsnotify.Event{Name: path, Op: fsnotify.Remove}); !ok {
		t.Fatalf("suppression must expire")
	}

	if err := fw.Unwatch(path); err != nil {
		t.Fatal(err)
	}
	if fw.Watched(path) {
		t.Fatalf("file still watched")
	}
}

func TestConvertEvent(t *testing.T) {
	cases := map[fsnotify.Op]FileOperation{
		fsnotify.Create: FileCreated,
		fsnotify.Write:  FileModified,
		fsnotify.Remove: FileDeleted,
		fsnotify.Rename: FileRenamed,
	}
	for op, want := range cases {
		if got := convertEvent(fsnotify.Event{Name: "/x", Op: op}).Operation; got != want {
			t.Fatalf("%v: got %v, want %v", op, got, want)
		}
	}
}
