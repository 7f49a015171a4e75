package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/ui/styles"
)

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string // клавиша в виде для показа
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandExecuteMsg сообщает приложению, какую команду нужно выполнить.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg сигнал закрытия палитры без выбора.
type CommandPaletteClosedMsg struct{}

// CommandPaletteScreen отображает список команд с фильтром.
type CommandPaletteScreen struct {
	BaseScreen

	theme    *styles.Theme
	catalog  *i18n.Catalog
	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int
	offset   int
}

func NewCommandPaletteScreen(theme *styles.Theme, catalog *i18n.Catalog, fetch CommandFetcher) *CommandPaletteScreen {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	return &CommandPaletteScreen{
		BaseScreen: NewBaseScreen(catalog.T("app.command_palette")),
		theme:      theme,
		catalog:    catalog,
		fetch:      fetch,
		filter:     ti,
	}
}

func (ps *CommandPaletteScreen) Init() tea.Cmd {
	ps.refresh()
	return nil
}

func (ps *CommandPaletteScreen) OnEnter() tea.Cmd {
	ps.SetTitle(ps.catalog.T("app.command_palette"))
	ps.filter.Placeholder = ps.catalog.T("palette.filter")
	ps.filter.SetValue("")
	ps.filter.Focus()
	ps.selected = 0
	ps.offset = 0
	ps.refresh()
	return nil
}

func (ps *CommandPaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.SetSize(m.Width, m.Height)
		ps.filter.Width = max(ps.Width()-8, 10)
		return ps, nil
	case tea.KeyMsg:
		switch m.String() {
		case "up", "shift+tab":
			if ps.selected > 0 {
				ps.selected--
			}
			return ps, nil
		case "down", "tab":
			if ps.selected < len(ps.filtered)-1 {
				ps.selected++
			}
			return ps, nil
		case "pgup":
			ps.selected = max(ps.selected-ps.listHeight(), 0)
			return ps, nil
		case "pgdown":
			ps.selected = max(min(ps.selected+ps.listHeight(), len(ps.filtered)-1), 0)
			return ps, nil
		case "enter":
			if ps.selected >= 0 && ps.selected < len(ps.filtered) {
				entry := ps.filtered[ps.selected]
				if entry.Enabled {
					return ps, func() tea.Msg { return CommandExecuteMsg{ID: entry.ID} }
				}
			}
			return ps, nil
		case "esc":
			return ps, func() tea.Msg { return CommandPaletteClosedMsg{} }
		}
		before := ps.filter.Value()
		var cmd tea.Cmd
		ps.filter, cmd = ps.filter.Update(m)
		if ps.filter.Value() != before {
			ps.applyFilter()
		}
		return ps, cmd
	}
	return ps, nil
}

// listHeight число строк списка, которые помещаются в окно
func (ps *CommandPaletteScreen) listHeight() int {
	// рамка, отступы и строка фильтра
	return max(ps.Height()-8, 3)
}

func (ps *CommandPaletteScreen) View() string {
	width := ps.Width()
	if width <= 0 {
		width = 80
	}
	if width < 20 {
		width = 20
	}

	visible := ps.listHeight()
	if ps.selected >= 0 {
		if ps.selected < ps.offset {
			ps.offset = ps.selected
		}
		if ps.selected >= ps.offset+visible {
			ps.offset = ps.selected - visible + 1
		}
	}

	var lines []string
	if len(ps.filtered) == 0 {
		lines = append(lines, ps.theme.HintStyle.Render(ps.catalog.T("palette.none")))
	}
	end := min(ps.offset+visible, len(ps.filtered))
	for i := ps.offset; i < end; i++ {
		entry := ps.filtered[i]
		prefix := "  "
		style := ps.theme.TextStyle
		if !entry.Enabled {
			style = ps.theme.HintStyle.Faint(true)
		}
		if i == ps.selected {
			prefix = "→ "
			style = ps.theme.SelectedStyle
		}
		line := style.Render(prefix + entry.Title)
		if entry.Key != "" {
			line += ps.theme.HintStyle.Render(" [" + entry.Key + "]")
		}
		lines = append(lines, line)
	}

	list := strings.Join(lines, "\n")
	content := lipgloss.NewStyle().Padding(1).Width(width - 2).Render(ps.filter.View() + "\n\n" + list)
	return ps.theme.TitleBar(ps.Title()) + "\n" + ps.theme.BorderStyle.Width(width-2).Render(content)
}

func (ps *CommandPaletteScreen) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

// Filtered команды, прошедшие фильтр
func (ps *CommandPaletteScreen) Filtered() []CommandEntry {
	return ps.filtered
}

func (ps *CommandPaletteScreen) applyFilter() {
	filter := strings.ToLower(strings.TrimSpace(ps.filter.Value()))
	filtered := make([]CommandEntry, 0, len(ps.entries))
	for _, entry := range ps.entries {
		if filter == "" || strings.Contains(strings.ToLower(entry.Title), filter) || strings.Contains(strings.ToLower(entry.Key), filter) || strings.Contains(entry.ID, filter) {
			filtered = append(filtered, entry)
		}
	}
	ps.filtered = filtered
	if len(ps.filtered) == 0 {
		ps.selected = -1
	} else if ps.selected >= len(ps.filtered) {
		ps.selected = len(ps.filtered) - 1
	} else if ps.selected < 0 {
		ps.selected = 0
	}
}

func (ps *CommandPaletteScreen) ShortHelp() string {
	return ps.catalog.T("hints.dialog")
}
