package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/ui/styles"
	"notepad-tui/internal/workspace"
)

const (
	closeButton     = "×"
	sidebarMinWidth = 12
	sidebarMaxWidth = 30
	statusSeparator = "  │  "
	modifiedMarker  = "*"
	titleSeparator  = " - "
)

// hintCommands команды, которые показываются в строке подсказок
var hintCommands = []string{
	"file.save", "file.open", "edit.find", "app.command_palette", "app.help", "app.quit",
}

// tabHit область вкладки на экране для обработки мыши
type tabHit struct {
	index  int
	x0, x1 int // занятые ячейки [x0, x1)
	y      int
	closeX int // ячейка кнопки закрытия или -1
}

// WorkspaceScreen главный экран: вкладки, редактор, поиск и строка состояния
type WorkspaceScreen struct {
	BaseScreen

	theme    *styles.Theme
	catalog  *i18n.Catalog
	settings *settings.Settings
	manager  *workspace.Manager
	find     *components.FindDialog
	help     help.Model
	keyFor   func(id string) string

	notice      string
	noticeError bool
	tabHits     []tabHit
	sidebar     int
}

// NewWorkspaceScreen создает главный экран. keyFor возвращает клавишу команды для подсказок.
func NewWorkspaceScreen(theme *styles.Theme, catalog *i18n.Catalog, s *settings.Settings, manager *workspace.Manager, keyFor func(string) string) *WorkspaceScreen {
	ws := &WorkspaceScreen{
		BaseScreen: NewBaseScreen(catalog.T("app.name")),
		theme:      theme,
		catalog:    catalog,
		settings:   s,
		manager:    manager,
		find:       components.NewFindDialog(),
		help:       help.New(),
		keyFor:     keyFor,
	}
	ws.refreshLabels()
	return ws
}

func (ws *WorkspaceScreen) Init() tea.Cmd {
	return nil
}

func (ws *WorkspaceScreen) OnEnter() tea.Cmd {
	ws.refreshLabels()
	ws.manager.Active().Editor.Focus()
	ws.relayout()
	return nil
}

func (ws *WorkspaceScreen) OnExit() tea.Cmd {
	ws.manager.Active().Editor.Blur()
	return nil
}

// Refresh применяет изменившиеся настройки, язык и тему
func (ws *WorkspaceScreen) Refresh() {
	ws.refreshLabels()
	ws.relayout()
}

func (ws *WorkspaceScreen) refreshLabels() {
	t := ws.catalog.T
	ws.SetTitle(t("app.name"))
	ws.find.Labels = components.FindLabels{
		Title:        t("find.title"),
		ReplaceTitle: t("find.replace"),
		What:         t("find.what"),
		With:         t("find.with"),
		Case:         t("find.case"),
		Whole:        t("find.whole"),
		Wrap:         t("find.wrap"),
		Hint:         t("find.hint"),
	}
	ws.find.Style = ws.theme.DialogStyle.Padding(0, 1)
	ws.help.Styles.ShortKey = ws.theme.HighlightStyle
	ws.help.Styles.ShortDesc = ws.theme.HintStyle
	ws.help.Styles.ShortSeparator = ws.theme.HintStyle
}

// Find панель поиска
func (ws *WorkspaceScreen) Find() *components.FindDialog {
	return ws.find
}

// OpenFind открывает панель поиска или замены
func (ws *WorkspaceScreen) OpenFind(replace bool) {
	seed := ws.manager.Active().Doc.Buffer().SelectedText()
	ws.find.Open(replace, seed)
	ws.syncSearch()
	ws.relayout()
}

// syncSearch подсвечивает строку поиска в активной вкладке, пока открыта панель
func (ws *WorkspaceScreen) syncSearch() {
	active := ws.manager.Active()
	for _, tab := range ws.manager.Tabs() {
		if tab == active && ws.find.Visible() {
			tab.Editor.HighlightQuery(ws.find.Query(), ws.find.Options)
		} else {
			tab.Editor.ReleaseQuery()
		}
	}
}

// SetNotice показывает сообщение над строкой состояния; пустая строка убирает его
func (ws *WorkspaceScreen) SetNotice(text string, isError bool) {
	ws.notice = text
	ws.noticeError = isError
	ws.relayout()
}

// Notice текущее сообщение
func (ws *WorkspaceScreen) Notice() string {
	return ws.notice
}

// WindowTitle строка заголовка «имя* - Блокнот»
func (ws *WorkspaceScreen) WindowTitle() string {
	doc := ws.manager.Active().Doc
	name := doc.DisplayName()
	if doc.Modified() {
		name += modifiedMarker
	}
	return name + titleSeparator + ws.catalog.T("app.name")
}

// StatusText содержимое строки состояния
func (ws *WorkspaceScreen) StatusText() string {
	tab := ws.manager.Active()
	doc := tab.Doc
	pos := tab.Editor.Cursor()
	parts := []string{
		doc.Format.String(),
		ws.catalog.F("status.length", doc.Length()),
		ws.catalog.F("status.pos", pos.Line+1, pos.Col+1),
		doc.LineEnding.String(),
		doc.Encoding.String(),
		ws.catalog.F("status.zoom", ws.manager.ZoomPercent()),
	}
	return strings.Join(parts, statusSeparator)
}

func (ws *WorkspaceScreen) hintBindings() []key.Binding {
	bindings := make([]key.Binding, 0, len(hintCommands))
	for _, id := range hintCommands {
		k := ""
		if ws.keyFor != nil {
			k = ws.keyFor(id)
		}
		if k == "" {
			continue
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, strings.TrimSuffix(ws.catalog.T(id), "...")),
		))
	}
	return bindings
}

func (ws *WorkspaceScreen) verticalTabs() bool {
	return ws.settings.ShowTabBar && ws.settings.VerticalTabBar
}

// relayout пересчитывает размер области редактора
func (ws *WorkspaceScreen) relayout() {
	w, h := ws.Width(), ws.Height()
	if w <= 0 || h <= 0 {
		return
	}
	top := 0
	if ws.settings.ShowMenu {
		top++
	}
	if ws.settings.ShowTabBar && !ws.settings.VerticalTabBar {
		top++
	}
	bottom := 0
	if ws.find.Visible() {
		ws.find.Style = ws.find.Style.Width(max(w-2, 10))
		bottom += lipgloss.Height(ws.find.View())
	}
	if ws.notice != "" {
		bottom++
	}
	if ws.settings.ShowStatusBar {
		bottom++
	}
	if ws.settings.ShowToolbar {
		bottom++
	}
	ws.sidebar = 0
	if ws.verticalTabs() {
		ws.sidebar = ws.sidebarWidth(w)
	}
	ws.manager.SetSize(ws.sidebar, top, max(w-ws.sidebar, 1), max(h-top-bottom, 1))
}

func (ws *WorkspaceScreen) sidebarWidth(total int) int {
	width := sidebarMinWidth
	for _, t := range ws.manager.Tabs() {
		width = max(width, runewidth.StringWidth(ws.tabLabel(t))+2)
	}
	return min(width, sidebarMaxWidth, max(total/3, 1))
}

func (ws *WorkspaceScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ws.SetSize(m.Width, m.Height)
		ws.relayout()
		return ws, nil
	case editor.ZoomMsg:
		if m.Delta > 0 {
			ws.manager.ZoomIn()
		} else {
			ws.manager.ZoomOut()
		}
		return ws, nil
	case components.FindClosedMsg:
		ws.syncSearch()
		ws.relayout()
		return ws, nil
	case tea.KeyMsg:
		if ws.find.Visible() {
			cmd := ws.find.Update(m)
			ws.syncSearch()
			if !ws.find.Visible() {
				ws.relayout()
			}
			return ws, cmd
		}
		if ws.notice != "" && !ws.noticeError {
			ws.SetNotice("", false)
		}
		cmd := ws.manager.Active().Editor.Update(m)
		return ws, cmd
	case tea.MouseMsg:
		return ws, ws.handleMouse(m)
	}
	return ws, nil
}

func (ws *WorkspaceScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonMiddle) {
		for _, hit := range ws.tabHits {
			if msg.Y != hit.y || msg.X < hit.x0 || msg.X >= hit.x1 {
				continue
			}
			if msg.Button == tea.MouseButtonMiddle || (hit.closeX >= 0 && msg.X == hit.closeX) {
				index := hit.index
				return func() tea.Msg { return CloseTabMsg{Index: index} }
			}
			ws.manager.Select(hit.index)
			ws.relayout()
			return nil
		}
		if ws.verticalTabs() && msg.X < ws.sidebar {
			return nil
		}
	}
	return ws.manager.Active().Editor.Update(msg)
}

func (ws *WorkspaceScreen) tabLabel(t *workspace.Tab) string {
	label := t.Doc.Name
	if t.Doc.Modified() {
		label += modifiedMarker
	}
	return label
}

// tabCell текст ячейки вкладки и смещение кнопки закрытия внутри нее или -1
func (ws *WorkspaceScreen) tabCell(t *workspace.Tab) (string, int) {
	label := " " + ws.tabLabel(t) + " "
	if !ws.settings.TabCloseButton {
		return label, -1
	}
	offset := runewidth.StringWidth(label)
	return label + closeButton + " ", offset
}

func (ws *WorkspaceScreen) renderHorizontalTabs(y int) string {
	width := ws.Width()
	tabs := ws.manager.Tabs()
	cells := make([]string, len(tabs))
	widths := make([]int, len(tabs))
	closeAt := make([]int, len(tabs))
	for i, t := range tabs {
		cells[i], closeAt[i] = ws.tabCell(t)
		widths[i] = runewidth.StringWidth(cells[i])
	}

	// первая видимая вкладка выбирается так, чтобы активная поместилась
	active := ws.manager.ActiveIndex()
	start := 0
	for start < active {
		sum := 0
		for i := start; i <= active; i++ {
			sum += widths[i]
		}
		if sum <= width {
			break
		}
		start++
	}

	var b strings.Builder
	x := 0
	for i := start; i < len(tabs); i++ {
		if x+widths[i] > width {
			break
		}
		style := ws.theme.InactiveTabStyle
		if i == active {
			style = ws.theme.ActiveTabStyle
		}
		b.WriteString(style.Padding(0).Render(cells[i]))
		hit := tabHit{index: i, x0: x, x1: x + widths[i], y: y, closeX: -1}
		if closeAt[i] >= 0 {
			hit.closeX = x + closeAt[i]
		}
		ws.tabHits = append(ws.tabHits, hit)
		x += widths[i]
	}
	return ws.theme.StatusBarStyle.Padding(0).Width(width).Render(b.String())
}

func (ws *WorkspaceScreen) renderVerticalTabs(top, height int) string {
	tabs := ws.manager.Tabs()
	active := ws.manager.ActiveIndex()
	start := 0
	if active >= height {
		start = active - height + 1
	}
	lines := make([]string, 0, height)
	for i := start; i < len(tabs) && len(lines) < height; i++ {
		cell, closeAt := ws.tabCell(tabs[i])
		cell = runewidth.Truncate(cell, ws.sidebar, "…")
		style := ws.theme.InactiveTabStyle
		if i == active {
			style = ws.theme.ActiveTabStyle
		}
		lines = append(lines, style.Padding(0).Width(ws.sidebar).Render(cell))
		hit := tabHit{index: i, x0: 0, x1: ws.sidebar, y: top + len(lines) - 1, closeX: -1}
		if closeAt >= 0 && closeAt < ws.sidebar {
			hit.closeX = closeAt
		}
		ws.tabHits = append(ws.tabHits, hit)
	}
	for len(lines) < height {
		lines = append(lines, ws.theme.StatusBarStyle.Padding(0).Width(ws.sidebar).Render(""))
	}
	return strings.Join(lines, "\n")
}

func (ws *WorkspaceScreen) View() string {
	if ws.Width() <= 0 || ws.Height() <= 0 {
		return "Loading..."
	}
	ws.tabHits = ws.tabHits[:0]

	var rows []string
	if ws.settings.ShowMenu {
		rows = append(rows, ws.theme.TitleBar(ws.WindowTitle()))
	}
	if ws.settings.ShowTabBar && !ws.settings.VerticalTabBar {
		rows = append(rows, ws.renderHorizontalTabs(len(rows)))
	}

	ed := ws.manager.Active().Editor
	body := ed.View()
	if ws.verticalTabs() {
		sidebar := ws.renderVerticalTabs(len(rows), lipgloss.Height(body))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}
	rows = append(rows, body)

	if ws.find.Visible() {
		rows = append(rows, ws.find.View())
	}
	if ws.notice != "" {
		text := runewidth.Truncate(firstLine(ws.notice), ws.Width(), "…")
		if ws.noticeError {
			rows = append(rows, ws.theme.ErrorMessage(text))
		} else {
			rows = append(rows, ws.theme.Notice(text))
		}
	}
	if ws.settings.ShowStatusBar {
		rows = append(rows, ws.theme.StatusBar(ws.StatusText()))
	}
	if ws.settings.ShowToolbar {
		ws.help.Width = ws.Width()
		rows = append(rows, ws.help.ShortHelpView(ws.hintBindings()))
	}
	return strings.Join(rows, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (ws *WorkspaceScreen) ShortHelp() string {
	var parts []string
	for _, b := range ws.hintBindings() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " • ")
}
