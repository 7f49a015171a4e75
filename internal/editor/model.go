package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/document"
)

// Config параметры поведения редактора
type Config struct {
	TabSize        int
	UseSpaces      bool
	Wrap           bool
	ShowWhitespace bool
}

// ExtraSelection визуальная подсветка поверх текста, не связанная с выделением
type ExtraSelection struct {
	Line      int
	FullWidth bool
	Style     lipgloss.Style
}

// ZoomMsg запрос масштабирования колесом мыши с Ctrl
type ZoomMsg struct {
	Delta int
}

// ClipboardErrorMsg ошибка записи в системный буфер обмена
type ClipboardErrorMsg struct {
	Err error
}

// Model редактор одного документа: текст, гаттер, подсветка текущей строки и поиска
type Model struct {
	doc       *document.Document
	cfg       Config
	style     Style
	gutter    *Gutter
	search    SearchHighlighter
	clipboard Clipboard

	width   int
	height  int
	originX int
	originY int
	top     int // первая видимая строка документа
	left    int // горизонтальная прокрутка в рунах, без переноса
	focused bool
	ro      bool

	// выделение, по которому последний раз настраивалась подсветка поиска
	seeded string
	// пока открыта панель поиска, подсвечивается ее строка, а не выделение
	pinned bool
}

// New создает редактор для документа
func New(doc *document.Document, cfg Config, style Style, clipboard Clipboard) *Model {
	if clipboard == nil {
		clipboard = &MemoryClipboard{}
	}
	if cfg.TabSize < 1 {
		cfg.TabSize = 4
	}
	m := &Model{
		doc:       doc,
		cfg:       cfg,
		style:     style,
		gutter:    NewGutter(style.Gutter),
		clipboard: clipboard,
		focused:   true,
	}
	m.gutter.SetBlockCount(doc.Buffer().LineCount())
	return m
}

// Document документ редактора
func (m *Model) Document() *document.Document {
	return m.doc
}

// Gutter гаттер редактора
func (m *Model) Gutter() *Gutter {
	return m.gutter
}

// Search подсветка поиска
func (m *Model) Search() *SearchHighlighter {
	return &m.search
}

// HighlightQuery подсвечивает строку из панели поиска вместо выделения
func (m *Model) HighlightQuery(query string, opts document.FindOptions) {
	m.pinned = true
	// строка из поля ввода экранируется, ошибки компиляции быть не может
	_ = m.search.SetQuery(query, opts)
}

// ReleaseQuery возвращает подсветку к выделенному тексту
func (m *Model) ReleaseQuery() {
	if !m.pinned {
		return
	}
	m.pinned = false
	m.seeded = m.doc.Buffer().SelectedText()
	m.search.Seed(m.seeded)
}

// SetSize задает размер области редактора вместе с гаттером
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.ensureCursorVisible()
}

// SetOrigin задает положение левого верхнего угла редактора на экране для мыши
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetStyle меняет стили
func (m *Model) SetStyle(style Style) {
	m.style = style
	m.gutter.SetStyle(style.Gutter)
}

// SetConfig меняет параметры поведения
func (m *Model) SetConfig(cfg Config) {
	if cfg.TabSize < 1 {
		cfg.TabSize = m.cfg.TabSize
	}
	m.cfg = cfg
	if cfg.Wrap {
		m.left = 0
	}
	m.ensureCursorVisible()
}

// Config текущие параметры
func (m *Model) Config() Config {
	return m.cfg
}

// SetReadOnly включает режим только для чтения
func (m *Model) SetReadOnly(ro bool) {
	m.ro = ro
}

// ReadOnly включен ли режим только для чтения
func (m *Model) ReadOnly() bool {
	return m.ro
}

// Focus передает ввод редактору
func (m *Model) Focus() { m.focused = true }

// Blur снимает фокус
func (m *Model) Blur() { m.focused = false }

// Focused есть ли фокус
func (m *Model) Focused() bool { return m.focused }

// ExtraSelections подсветка текущей строки; пусто в режиме только для чтения
func (m *Model) ExtraSelections() []ExtraSelection {
	if m.ro {
		return nil
	}
	return []ExtraSelection{{
		Line:      m.doc.Buffer().Cursor().Line,
		FullWidth: true,
		Style:     m.style.CurrentLine,
	}}
}

// Cursor позиция каретки
func (m *Model) Cursor() document.Pos {
	return m.doc.Buffer().Cursor()
}

// GotoLine переходит на строку (с единицы); за концом документа каретка встает в конец
func (m *Model) GotoLine(line int) {
	b := m.doc.Buffer()
	b.ClearAnchor()
	if line > b.LineCount() {
		last := b.LineCount() - 1
		b.MoveTo(last, b.LineLength(last))
	} else {
		b.MoveTo(max(line, 1)-1, 0)
	}
	m.afterMove()
}

// Update обрабатывает клавиатуру и мышь
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		_, cmd := m.handleKey(msg)
		return cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "left":
		m.move(false, (*document.Buffer).MoveLeft)
	case "right":
		m.move(false, (*document.Buffer).MoveRight)
	case "up":
		m.move(false, (*document.Buffer).MoveUp)
	case "down":
		m.move(false, (*document.Buffer).MoveDown)
	case "shift+left":
		m.move(true, (*document.Buffer).MoveLeft)
	case "shift+right":
		m.move(true, (*document.Buffer).MoveRight)
	case "shift+up":
		m.move(true, (*document.Buffer).MoveUp)
	case "shift+down":
		m.move(true, (*document.Buffer).MoveDown)
	case "ctrl+left":
		m.move(false, (*document.Buffer).MoveWordLeft)
	case "ctrl+right":
		m.move(false, (*document.Buffer).MoveWordRight)
	case "ctrl+shift+left":
		m.move(true, (*document.Buffer).MoveWordLeft)
	case "ctrl+shift+right":
		m.move(true, (*document.Buffer).MoveWordRight)
	case "home":
		m.move(false, lineStart)
	case "end":
		m.move(false, lineEnd)
	case "shift+home":
		m.move(true, lineStart)
	case "shift+end":
		m.move(true, lineEnd)
	case "ctrl+home":
		m.move(false, docStart)
	case "ctrl+end":
		m.move(false, docEnd)
	case "ctrl+shift+home":
		m.move(true, docStart)
	case "ctrl+shift+end":
		m.move(true, docEnd)
	case "pgup":
		m.page(-1, false)
	case "pgdown":
		m.page(1, false)
	case "shift+pgup":
		m.page(-1, true)
	case "shift+pgdown":
		m.page(1, true)
	case "esc":
		m.doc.Buffer().ClearAnchor()
		m.afterMove()
	case "enter":
		m.InsertText("\n")
	case "tab":
		if m.cfg.UseSpaces {
			m.InsertText(strings.Repeat(" ", m.cfg.TabSize))
		} else {
			m.InsertText("\t")
		}
	case "backspace":
		m.edit(func(b *document.Buffer) bool { return b.DeleteBackward() != "" })
	case "delete":
		m.edit(func(b *document.Buffer) bool { return b.DeleteForward() != "" })
	case "ctrl+a":
		m.SelectAll()
	case "ctrl+c":
		return true, m.Copy()
	case "ctrl+x":
		return true, m.Cut()
	case "ctrl+v":
		m.Paste()
	case "ctrl+z":
		m.Undo()
	case "ctrl+y":
		m.Redo()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			if text := string(msg.Runes); text != "" {
				m.InsertText(text)
				return true, nil
			}
		}
		return false, nil
	}
	return true, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Ctrl {
			return zoomCmd(ZoomStep)
		}
		m.scroll(-3)
	case tea.MouseButtonWheelDown:
		if msg.Ctrl {
			return zoomCmd(-ZoomStep)
		}
		m.scroll(3)
	case tea.MouseButtonLeft:
		m.ClickAt(msg.X-m.originX, msg.Y-m.originY, msg.Shift)
	}
	return nil
}

func zoomCmd(delta int) tea.Cmd {
	return func() tea.Msg { return ZoomMsg{Delta: delta} }
}

// ClickAt ставит каретку в ячейку (x, y) относительно редактора
func (m *Model) ClickAt(x, y int, selecting bool) {
	rows := m.layout()
	if len(rows) == 0 || y < 0 {
		return
	}
	y = min(y, len(rows)-1)
	row := rows[y]
	b := m.doc.Buffer()
	if selecting {
		if _, ok := b.Anchor(); !ok {
			b.SetAnchor()
		}
	} else {
		b.ClearAnchor()
	}
	col := row.start
	if row.line >= 0 {
		runes := b.LineRunes(row.line)
		cell := x - m.gutter.Width()
		used := 0
		for col < row.end {
			w := m.cellWidth(runes[col])
			if used+w > cell {
				break
			}
			used += w
			col++
		}
		b.MoveTo(row.line, col)
	} else {
		last := b.LineCount() - 1
		b.MoveTo(last, b.LineLength(last))
	}
	m.afterMove()
}

func (m *Model) scroll(delta int) {
	last := m.doc.Buffer().LineCount() - 1
	m.top = max(0, min(m.top+delta, last))
}

func lineStart(b *document.Buffer) {
	b.MoveTo(b.Cursor().Line, 0)
}

func lineEnd(b *document.Buffer) {
	line := b.Cursor().Line
	b.MoveTo(line, b.LineLength(line))
}

func docStart(b *document.Buffer) {
	b.MoveTo(0, 0)
}

func docEnd(b *document.Buffer) {
	last := b.LineCount() - 1
	b.MoveTo(last, b.LineLength(last))
}

func (m *Model) move(selecting bool, fn func(*document.Buffer)) {
	b := m.doc.Buffer()
	if selecting {
		if _, ok := b.Anchor(); !ok {
			b.SetAnchor()
		}
	} else {
		b.ClearAnchor()
	}
	fn(b)
	m.afterMove()
}

func (m *Model) page(direction int, selecting bool) {
	step := max(m.height-1, 1) * direction
	m.move(selecting, func(b *document.Buffer) {
		c := b.Cursor()
		b.MoveTo(c.Line+step, c.Col)
	})
}

func (m *Model) edit(fn func(*document.Buffer) bool) bool {
	if m.ro {
		return false
	}
	changed := m.doc.Edit(fn)
	m.afterMove()
	return changed
}

// InsertText вставляет текст в позицию каретки
func (m *Model) InsertText(text string) {
	if text == "" {
		return
	}
	m.edit(func(b *document.Buffer) bool {
		b.InsertText(text)
		return true
	})
}

// Apply применяет преобразование текста к выделению или всему документу
func (m *Model) Apply(fn document.Transform) bool {
	if m.ro {
		return false
	}
	changed := m.doc.Apply(fn)
	m.afterMove()
	return changed
}

// SelectAll выделяет весь текст
func (m *Model) SelectAll() {
	m.doc.Buffer().SelectAll()
	m.afterMove()
}

// Copy копирует выделение в буфер обмена
func (m *Model) Copy() tea.Cmd {
	text := m.doc.Buffer().SelectedText()
	if text == "" {
		return nil
	}
	return m.writeClipboard(text)
}

// Cut вырезает выделение в буфер обмена
func (m *Model) Cut() tea.Cmd {
	b := m.doc.Buffer()
	if m.ro || !b.HasSelection() {
		return nil
	}
	text := b.SelectedText()
	m.edit(func(b *document.Buffer) bool { return b.DeleteSelection() != "" })
	return m.writeClipboard(text)
}

// Paste вставляет текст из буфера обмена
func (m *Model) Paste() {
	text, err := m.clipboard.ReadText()
	if err != nil {
		return
	}
	m.InsertText(text)
}

// Delete удаляет выделение или символ после каретки
func (m *Model) Delete() {
	m.edit(func(b *document.Buffer) bool { return b.DeleteForward() != "" })
}

// Undo отменяет последнее изменение
func (m *Model) Undo() {
	if m.ro {
		return
	}
	m.doc.Undo()
	m.afterMove()
}

// Redo повторяет отмененное изменение
func (m *Model) Redo() {
	if m.ro {
		return
	}
	m.doc.Redo()
	m.afterMove()
}

func (m *Model) writeClipboard(text string) tea.Cmd {
	if err := m.clipboard.WriteText(text); err != nil {
		return func() tea.Msg { return ClipboardErrorMsg{Err: err} }
	}
	return nil
}

// Sync пересчитывает гаттер, прокрутку и подсветку после внешнего изменения документа
func (m *Model) Sync() {
	m.afterMove()
}

func (m *Model) afterMove() {
	m.gutter.SetBlockCount(m.doc.Buffer().LineCount())
	m.ensureCursorVisible()
	// подсветка следует за выделением, как только оно меняется
	if m.pinned {
		return
	}
	if selected := m.doc.Buffer().SelectedText(); selected != m.seeded {
		m.seeded = selected
		m.search.Seed(selected)
	}
}

func (m *Model) contentWidth() int {
	return max(m.width-m.gutter.Width(), 1)
}

func (m *Model) ensureCursorVisible() {
	b := m.doc.Buffer()
	m.top = max(0, min(m.top, b.LineCount()-1))
	c := b.Cursor()
	if c.Line < m.top {
		m.top = c.Line
	}
	if m.height <= 0 {
		return
	}
	if !m.cfg.Wrap {
		if c.Line >= m.top+m.height {
			m.top = c.Line - m.height + 1
		}
		runes := b.LineRunes(c.Line)
		if c.Col < m.left {
			m.left = c.Col
		}
		for m.left < c.Col && m.widthOf(runes[m.left:c.Col]) >= m.contentWidth() {
			m.left++
		}
		return
	}
	// строка каретки вместе с предыдущими должна уместиться в высоту вьюпорта
	for m.top < c.Line {
		rows := 0
		for line := m.top; line < c.Line; line++ {
			rows += len(m.segments(line))
		}
		rows += m.segmentIndex(c) + 1
		if rows <= m.height {
			break
		}
		m.top++
	}
}
