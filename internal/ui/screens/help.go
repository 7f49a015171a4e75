package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/ui/styles"
)

// HelpEntry строка справки: команда и ее клавиша
type HelpEntry struct {
	Title string
	Key   string
}

// HelpScreen список горячих клавиш и сведения о программе
type HelpScreen struct {
	BaseScreen

	theme   *styles.Theme
	catalog *i18n.Catalog
	fetch   func() []HelpEntry
	lines   []string
	offset  int
}

// NewHelpScreen создает экран справки
func NewHelpScreen(theme *styles.Theme, catalog *i18n.Catalog, fetch func() []HelpEntry) *HelpScreen {
	return &HelpScreen{
		BaseScreen: NewBaseScreen(catalog.T("help.title")),
		theme:      theme,
		catalog:    catalog,
		fetch:      fetch,
	}
}

func (hs *HelpScreen) Init() tea.Cmd {
	return nil
}

func (hs *HelpScreen) OnEnter() tea.Cmd {
	hs.SetTitle(hs.catalog.T("help.title"))
	hs.offset = 0
	hs.lines = hs.FullHelp()
	return nil
}

func (hs *HelpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		hs.SetSize(m.Width, m.Height)
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			hs.scroll(-1)
		case "down", "j":
			hs.scroll(1)
		case "pgup":
			hs.scroll(-hs.pageHeight())
		case "pgdown", " ":
			hs.scroll(hs.pageHeight())
		case "home":
			hs.offset = 0
		case "esc", "q", "f1":
			return hs, func() tea.Msg { return BackMsg{} }
		}
	case tea.MouseMsg:
		switch m.Button {
		case tea.MouseButtonWheelUp:
			hs.scroll(-3)
		case tea.MouseButtonWheelDown:
			hs.scroll(3)
		}
	}
	return hs, nil
}

func (hs *HelpScreen) pageHeight() int {
	return max(hs.Height()-2, 1)
}

func (hs *HelpScreen) scroll(delta int) {
	hs.offset = max(0, min(hs.offset+delta, len(hs.lines)-hs.pageHeight()))
}

// FullHelp сведения о программе и привязки клавиш
func (hs *HelpScreen) FullHelp() []string {
	lines := strings.Split(hs.catalog.T("msg.about"), "\n")
	lines = append(lines, "", hs.catalog.T("help.keys")+":")
	if hs.fetch == nil {
		return lines
	}
	entries := hs.fetch()
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Key))
	}
	for _, e := range entries {
		lines = append(lines, "  "+e.Key+strings.Repeat(" ", width-lipgloss.Width(e.Key)+2)+e.Title)
	}
	return lines
}

func (hs *HelpScreen) View() string {
	end := min(hs.offset+hs.pageHeight(), len(hs.lines))
	body := ""
	if hs.offset < end {
		body = hs.theme.TextStyle.Render(strings.Join(hs.lines[hs.offset:end], "\n"))
	}
	return strings.Join([]string{
		hs.theme.TitleBar(hs.Title()),
		lipgloss.NewStyle().Height(hs.pageHeight()).Render(body),
		hs.theme.HintStyle.Render(hs.ShortHelp()),
	}, "\n")
}

func (hs *HelpScreen) ShortHelp() string {
	return hs.catalog.T("help.hint")
}
