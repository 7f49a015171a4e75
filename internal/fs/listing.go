package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry элемент каталога
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// DisplayName имя для списка; каталоги отмечаются косой чертой
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Listing содержимое одного каталога для выбора файла
type Listing struct {
	Dir        string
	Entries    []Entry // первым идет "..", если есть родитель
	Selected   int
	ShowHidden bool
	TextOnly   bool // показывать только *.txt
}

// NewListing читает каталог dir
func NewListing(dir string) (*Listing, error) {
	l := &Listing{}
	if err := l.Chdir(dir); err != nil {
		return nil, err
	}
	return l, nil
}

// Chdir переходит в другой каталог
func (l *Listing) Chdir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	entries, err := l.read(abs)
	if err != nil {
		return err
	}
	prev := l.Dir
	l.Dir = abs
	l.Entries = entries
	l.Selected = 0
	// при подъеме вверх выделяем каталог, из которого пришли
	if prev != "" && filepath.Dir(prev) == abs {
		for i, e := range l.Entries {
			if e.Path == prev {
				l.Selected = i
			}
		}
	}
	return nil
}

func (l *Listing) read(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, de := range dirEntries {
		// Пропускаем скрытые файлы если не включен показ
		if !l.ShowHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if l.TextOnly && !info.IsDir() && !strings.EqualFold(filepath.Ext(de.Name()), ".txt") {
			continue
		}
		entries = append(entries, Entry{
			Name:  de.Name(),
			Path:  path,
			IsDir: info.IsDir(),
			Size:  info.Size(),
		})
	}

	// Сортируем: сначала директории, потом файлы, по алфавиту
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	if parent := filepath.Dir(dir); parent != dir {
		entries = append([]Entry{{Name: "..", Path: parent, IsDir: true}}, entries...)
	}
	return entries, nil
}

// Refresh перечитывает текущий каталог, сохраняя выделение по пути
func (l *Listing) Refresh() error {
	var selected string
	if e := l.Current(); e != nil {
		selected = e.Path
	}
	entries, err := l.read(l.Dir)
	if err != nil {
		return err
	}
	l.Entries = entries
	l.Selected = 0
	for i, e := range entries {
		if e.Path == selected {
			l.Selected = i
		}
	}
	return nil
}

// Current выбранный элемент
func (l *Listing) Current() *Entry {
	if l.Selected < 0 || l.Selected >= len(l.Entries) {
		return nil
	}
	return &l.Entries[l.Selected]
}

// SetSelected устанавливает выбранный элемент с ограничением по границам
func (l *Listing) SetSelected(index int) {
	if len(l.Entries) == 0 {
		l.Selected = 0
		return
	}
	l.Selected = max(0, min(index, len(l.Entries)-1))
}

// Move сдвигает выделение
func (l *Listing) Move(delta int) {
	l.SetSelected(l.Selected + delta)
}

// Enter открывает выбранный каталог или возвращает путь выбранного файла
func (l *Listing) Enter() (string, error) {
	e := l.Current()
	if e == nil {
		return "", nil
	}
	if e.IsDir {
		return "", l.Chdir(e.Path)
	}
	return e.Path, nil
}

// Up переходит в родительский каталог
func (l *Listing) Up() error {
	parent := filepath.Dir(l.Dir)
	if parent == l.Dir {
		return nil
	}
	return l.Chdir(parent)
}

// SetShowHidden устанавливает показ скрытых файлов
func (l *Listing) SetShowHidden(show bool) error {
	if l.ShowHidden == show {
		return nil
	}
	l.ShowHidden = show
	return l.Refresh()
}

// SetTextOnly включает фильтр *.txt
func (l *Listing) SetTextOnly(on bool) error {
	if l.TextOnly == on {
		return nil
	}
	l.TextOnly = on
	return l.Refresh()
}
