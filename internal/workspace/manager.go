package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"notepad-tui/internal/document"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/textio"
)

var (
	// ErrAlreadyOpen файл уже открыт в другой вкладке
	ErrAlreadyOpen = errors.New("the file is already opened in Notepad")
	// ErrNeedsPath безымянный документ нужно сохранить под именем
	ErrNeedsPath = errors.New("document has no path")
	// ErrUnsaved вкладка содержит несохраненные изменения
	ErrUnsaved = errors.New("document has unsaved changes")
	// ErrExists файл с таким именем уже существует
	ErrExists = errors.New("file already exists")
)

// Tab вкладка: документ и его виджет редактора
type Tab struct {
	Doc    *document.Document
	Editor *editor.Model
}

// Options параметры менеджера вкладок
type Options struct {
	Reader     textio.Reader
	MaxHistory int
	Editor     editor.Config
	Style      editor.Style
	Clipboard  editor.Clipboard
	Recent     *settings.RecentFiles
	ZoomBase   int // базовый размер шрифта
}

// Manager управляет открытыми документами
type Manager struct {
	opts     Options
	tabs     []*Tab
	active   int
	untitled int
	zoom     int
	listener func(Event)

	x, y, width, height int
}

// NewManager создает менеджер с одной пустой вкладкой
func NewManager(opts Options) *Manager {
	if opts.Recent == nil {
		opts.Recent = settings.NewRecentFiles(settings.MaxRecentFiles)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &editor.MemoryClipboard{}
	}
	m := &Manager{opts: opts}
	m.New()
	return m
}

// SetListener задает получателя событий менеджера
func (m *Manager) SetListener(fn func(Event)) {
	m.listener = fn
}

func (m *Manager) publish(kind EventKind, tab *Tab, oldPath string) {
	if m.listener == nil {
		return
	}
	m.listener(Event{Kind: kind, Path: tab.Doc.Path, OldPath: oldPath, Name: tab.Doc.Name})
}

// Tabs все вкладки по порядку
func (m *Manager) Tabs() []*Tab {
	return m.tabs
}

// Len количество вкладок
func (m *Manager) Len() int {
	return len(m.tabs)
}

// Tab вкладка по индексу
func (m *Manager) Tab(i int) *Tab {
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	return m.tabs[i]
}

// Active текущая вкладка
func (m *Manager) Active() *Tab {
	return m.tabs[m.active]
}

// ActiveIndex индекс текущей вкладки
func (m *Manager) ActiveIndex() int {
	return m.active
}

// Recent список недавних файлов
func (m *Manager) Recent() *settings.RecentFiles {
	return m.opts.Recent
}

// IndexOf индекс вкладки с файлом path или -1
func (m *Manager) IndexOf(path string) int {
	if path == "" {
		return -1
	}
	path = absPath(path)
	for i, t := range m.tabs {
		if t.Doc.Path == path {
			return i
		}
	}
	return -1
}

func (m *Manager) newTab(doc *document.Document) *Tab {
	if m.opts.MaxHistory > 0 {
		doc.SetMaxHistory(m.opts.MaxHistory)
	}
	doc.Zoom = m.zoom
	ed := editor.New(doc, m.opts.Editor, m.opts.Style, m.opts.Clipboard)
	ed.SetOrigin(m.x, m.y)
	ed.SetSize(m.width, m.height)
	tab := &Tab{Doc: doc, Editor: ed}
	m.tabs = append(m.tabs, tab)
	m.Select(len(m.tabs) - 1)
	return tab
}

// New открывает пустую вкладку UntitledN.txt
func (m *Manager) New() *Tab {
	m.untitled++
	tab := m.newTab(document.New(fmt.Sprintf("Untitled%d.txt", m.untitled)))
	m.publish(EventOpened, tab, "")
	return tab
}

// Open открывает файл в новой вкладке. Если файл уже открыт, вкладка
// становится текущей и возвращается ErrAlreadyOpen.
func (m *Manager) Open(path string) (*Tab, error) {
	path = absPath(path)
	if i := m.IndexOf(path); i >= 0 {
		m.Select(i)
		return m.tabs[i], ErrAlreadyOpen
	}
	f, err := m.opts.Reader.Read(path)
	if err != nil {
		return nil, err
	}
	tab := m.newTab(document.FromFile(path, f))
	m.opts.Recent.Add(path)
	m.publish(EventOpened, tab, "")
	return tab, nil
}

// Save сохраняет вкладку i по ее пути
func (m *Manager) Save(i int) error {
	tab := m.Tab(i)
	if tab == nil {
		return fmt.Errorf("save: no tab %d", i)
	}
	if tab.Doc.Untitled() {
		return ErrNeedsPath
	}
	return m.write(tab, tab.Doc.Path)
}

// SaveAs сохраняет вкладку i под новым путем
func (m *Manager) SaveAs(i int, path string) error {
	tab := m.Tab(i)
	if tab == nil {
		return fmt.Errorf("save as: no tab %d", i)
	}
	path = absPath(path)
	if j := m.IndexOf(path); j >= 0 && j != i {
		m.Select(j)
		return ErrAlreadyOpen
	}
	return m.write(tab, path)
}

func (m *Manager) write(tab *Tab, path string) error {
	doc := tab.Doc
	if err := textio.Write(path, doc.Text(), doc.Encoding, doc.LineEnding); err != nil {
		return err
	}
	oldPath := doc.Path
	doc.MarkSaved(path)
	m.opts.Recent.Add(path)
	m.publish(EventSaved, tab, oldPath)
	return nil
}

// Close закрывает вкладку, если в ней нет несохраненных изменений
func (m *Manager) Close(i int) error {
	tab := m.Tab(i)
	if tab == nil {
		return fmt.Errorf("close: no tab %d", i)
	}
	if tab.Doc.Modified() {
		return ErrUnsaved
	}
	m.ForceClose(i)
	return nil
}

// ForceClose закрывает вкладку без проверки изменений.
// После закрытия последней вкладки открывается новая Untitled1.txt.
func (m *Manager) ForceClose(i int) {
	tab := m.Tab(i)
	if tab == nil {
		return
	}
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	m.publish(EventClosed, tab, "")
	if len(m.tabs) == 0 {
		m.untitled = 0
		m.active = 0
		m.New()
		return
	}
	if m.active >= len(m.tabs) || m.active > i {
		m.active--
	}
	m.Select(max(m.active, 0))
}

// ModifiedTabs индексы вкладок с несохраненными изменениями
func (m *Manager) ModifiedTabs() []int {
	var out []int
	for i, t := range m.tabs {
		if t.Doc.Modified() {
			out = append(out, i)
		}
	}
	return out
}

// Select делает вкладку i текущей
func (m *Manager) Select(i int) {
	if i < 0 || i >= len(m.tabs) {
		return
	}
	for j, t := range m.tabs {
		if j == i {
			t.Editor.Focus()
		} else {
			t.Editor.Blur()
		}
	}
	m.active = i
}

// Next переходит к следующей вкладке по кругу
func (m *Manager) Next() {
	m.Select((m.active + 1) % len(m.tabs))
}

// Prev переходит к предыдущей вкладке по кругу
func (m *Manager) Prev() {
	m.Select((m.active - 1 + len(m.tabs)) % len(m.tabs))
}

// Rename меняет имя вкладки; файл именованного документа переименовывается на диске
func (m *Manager) Rename(i int, name string) error {
	tab := m.Tab(i)
	if tab == nil {
		return fmt.Errorf("rename: no tab %d", i)
	}
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("rename: invalid name %q", name)
	}
	doc := tab.Doc
	if doc.Untitled() {
		doc.Rename(name, "")
		m.publish(EventRenamed, tab, "")
		return nil
	}
	oldPath := doc.Path
	newPath := filepath.Join(filepath.Dir(oldPath), name)
	if newPath == oldPath {
		return nil
	}
	if j := m.IndexOf(newPath); j >= 0 {
		return ErrAlreadyOpen
	}
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("rename %s: %w", newPath, ErrExists)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return &textio.Error{Op: "rename", Path: oldPath, Err: err}
	}
	doc.Rename(name, newPath)
	m.opts.Recent.Remove(oldPath)
	m.opts.Recent.Add(newPath)
	m.publish(EventRenamed, tab, oldPath)
	return nil
}

// Reload перечитывает файл вкладки с диска и возвращает сводку изменений
func (m *Manager) Reload(i int) (document.LineChanges, error) {
	return m.reload(i, func(path string) (*textio.File, error) {
		return m.opts.Reader.Read(path)
	})
}

// ReopenWithEncoding перечитывает файл в явно указанной кодировке
func (m *Manager) ReopenWithEncoding(i int, enc textio.Encoding) (document.LineChanges, error) {
	return m.reload(i, func(path string) (*textio.File, error) {
		return m.opts.Reader.ReadAs(path, enc)
	})
}

func (m *Manager) reload(i int, read func(string) (*textio.File, error)) (document.LineChanges, error) {
	tab := m.Tab(i)
	if tab == nil {
		return document.LineChanges{}, fmt.Errorf("reload: no tab %d", i)
	}
	if tab.Doc.Untitled() {
		return document.LineChanges{}, ErrNeedsPath
	}
	f, err := read(tab.Doc.Path)
	if err != nil {
		return document.LineChanges{}, err
	}
	changes := document.DiffLines(tab.Doc.Text(), f.Text)
	tab.Doc.Reload(f)
	tab.Editor.Sync()
	m.publish(EventReloaded, tab, "")
	return changes, nil
}

// SetEncoding меняет кодировку для следующего сохранения
func (m *Manager) SetEncoding(i int, enc textio.Encoding) {
	if tab := m.Tab(i); tab != nil {
		tab.Doc.SetEncoding(enc)
	}
}

// SetLineEnding меняет стиль перевода строк
func (m *Manager) SetLineEnding(i int, le textio.LineEnding) {
	if tab := m.Tab(i); tab != nil {
		tab.Doc.SetLineEnding(le)
	}
}

// Zoom общий уровень масштаба
func (m *Manager) Zoom() int {
	return m.zoom
}

// ZoomPercent масштаб в процентах для строки состояния
func (m *Manager) ZoomPercent() int {
	return editor.ZoomPercent(m.zoom, m.opts.ZoomBase)
}

// ZoomIn увеличивает масштаб всех вкладок
func (m *Manager) ZoomIn() {
	m.setZoom(editor.ZoomIn(m.zoom))
}

// ZoomOut уменьшает масштаб всех вкладок
func (m *Manager) ZoomOut() {
	m.setZoom(editor.ZoomOut(m.zoom, m.opts.ZoomBase))
}

// ZoomRestore сбрасывает масштаб
func (m *Manager) ZoomRestore() {
	m.setZoom(0)
}

// SetZoomBase меняет базовый размер шрифта
func (m *Manager) SetZoomBase(base int) {
	m.opts.ZoomBase = base
	m.setZoom(m.zoom)
}

func (m *Manager) setZoom(level int) {
	if base := m.opts.ZoomBase; base > 0 && base+level < 1 {
		level = 1 - base
	}
	m.zoom = level
	for _, t := range m.tabs {
		t.Doc.Zoom = level
	}
}

// SetEditorConfig применяет настройки редактора ко всем вкладкам
func (m *Manager) SetEditorConfig(cfg editor.Config) {
	m.opts.Editor = cfg
	for _, t := range m.tabs {
		t.Editor.SetConfig(cfg)
	}
}

// EditorConfig текущие настройки редактора
func (m *Manager) EditorConfig() editor.Config {
	return m.opts.Editor
}

// SetStyle применяет стиль ко всем вкладкам
func (m *Manager) SetStyle(style editor.Style) {
	m.opts.Style = style
	for _, t := range m.tabs {
		t.Editor.SetStyle(style)
	}
}

// SetSize задает размер и положение области редактора для всех вкладок
func (m *Manager) SetSize(x, y, width, height int) {
	m.x, m.y, m.width, m.height = x, y, width, height
	for _, t := range m.tabs {
		t.Editor.SetOrigin(x, y)
		t.Editor.SetSize(width, height)
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
