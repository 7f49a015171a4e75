package screens

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"notepad-tui/internal/fs"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/ui/styles"
)

// openPathMsg результат ввода пути вручную
type openPathMsg struct {
	result components.InputResult
}

// OpenScreen обзор каталогов для выбора файла
type OpenScreen struct {
	BaseScreen

	theme   *styles.Theme
	catalog *i18n.Catalog
	listing *fs.Listing
	input   *components.InputDialog
	dir     string
	offset  int
	err     error
}

// NewOpenScreen создает экран открытия файла
func NewOpenScreen(theme *styles.Theme, catalog *i18n.Catalog) *OpenScreen {
	return &OpenScreen{
		BaseScreen: NewBaseScreen(catalog.T("open.title")),
		theme:      theme,
		catalog:    catalog,
		input:      components.NewInputDialog(),
	}
}

// SetDir задает каталог, который будет показан при следующем входе на экран
func (s *OpenScreen) SetDir(dir string) {
	s.dir = dir
}

// Dir текущий каталог списка
func (s *OpenScreen) Dir() string {
	if s.listing == nil {
		return s.dir
	}
	return s.listing.Dir
}

// Listing текущее содержимое каталога
func (s *OpenScreen) Listing() *fs.Listing {
	return s.listing
}

func (s *OpenScreen) Init() tea.Cmd {
	return nil
}

func (s *OpenScreen) OnEnter() tea.Cmd {
	s.SetTitle(s.catalog.T("open.title"))
	s.err = nil
	dir := s.dir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if s.listing != nil && s.listing.Dir == dir {
		s.err = s.listing.Refresh()
		return nil
	}
	listing, err := fs.NewListing(dir)
	if err != nil {
		s.err = err
		if s.listing == nil {
			home, _ := os.UserHomeDir()
			listing, _ = fs.NewListing(home)
		}
	}
	if listing != nil {
		s.listing = listing
		s.offset = 0
	}
	return nil
}

// CanExit нельзя уйти с экрана, пока открыто окно ввода
func (s *OpenScreen) CanExit() bool {
	return !s.input.Visible()
}

func (s *OpenScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(m.Width, m.Height)
		s.input.SetWidth(m.Width - 10)
		return s, nil
	case openPathMsg:
		if !m.result.OK || m.result.Value == "" {
			return s, nil
		}
		path := m.result.Value
		if !filepath.IsAbs(path) && s.listing != nil {
			path = filepath.Join(s.listing.Dir, path)
		}
		return s, openFile(path)
	case tea.KeyMsg:
		if s.input.Visible() {
			return s, s.input.Update(m)
		}
		return s, s.handleKey(m)
	case tea.MouseMsg:
		if m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft && s.listing != nil {
			// заголовок, строка каталога и пустая строка
			row := m.Y - 3 + s.offset
			if row >= 0 && row < len(s.listing.Entries) {
				if row == s.listing.Selected {
					return s, s.enter()
				}
				s.listing.SetSelected(row)
			}
		}
		if s.listing != nil {
			switch m.Button {
			case tea.MouseButtonWheelUp:
				s.listing.Move(-3)
			case tea.MouseButtonWheelDown:
				s.listing.Move(3)
			}
		}
	}
	return s, nil
}

func openFile(path string) tea.Cmd {
	return func() tea.Msg { return OpenFileMsg{Path: path} }
}

func (s *OpenScreen) handleKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "esc":
		return func() tea.Msg { return BackMsg{} }
	case "p":
		ch := s.input.Show(s.catalog.T("dialog.open_title"), s.catalog.T("dialog.path_label"), "")
		s.input.Hint = s.catalog.T("hints.dialog")
		return components.Await(ch, func(r components.InputResult) tea.Msg { return openPathMsg{result: r} })
	}
	if s.listing == nil {
		return nil
	}
	s.err = nil
	switch m.String() {
	case "up", "k":
		s.listing.Move(-1)
	case "down", "j":
		s.listing.Move(1)
	case "pgup":
		s.listing.Move(-s.listHeight())
	case "pgdown":
		s.listing.Move(s.listHeight())
	case "home":
		s.listing.SetSelected(0)
	case "end":
		s.listing.SetSelected(len(s.listing.Entries) - 1)
	case "enter", "right", "l":
		return s.enter()
	case "backspace", "left", "h":
		s.err = s.listing.Up()
		s.offset = 0
	case ".":
		s.err = s.listing.SetShowHidden(!s.listing.ShowHidden)
	case "t":
		s.err = s.listing.SetTextOnly(!s.listing.TextOnly)
	}
	return nil
}

func (s *OpenScreen) enter() tea.Cmd {
	path, err := s.listing.Enter()
	if err != nil {
		s.err = err
		return nil
	}
	if path == "" {
		s.offset = 0
		return nil
	}
	return openFile(path)
}

func (s *OpenScreen) listHeight() int {
	return max(s.Height()-5, 1)
}

func (s *OpenScreen) View() string {
	width := max(s.Width(), 20)
	lines := []string{s.theme.TitleBar(s.Title())}
	if s.listing == nil {
		if s.err != nil {
			lines = append(lines, s.theme.ErrorMessage(s.err.Error()))
		}
		return strings.Join(lines, "\n")
	}

	filter := s.catalog.T("open.all")
	if s.listing.TextOnly {
		filter = s.catalog.T("open.filter")
	}
	lines = append(lines, s.theme.HighlightStyle.Render(runewidth.Truncate(s.listing.Dir, width-runewidth.StringWidth(filter)-3, "…"))+"  "+s.theme.HintStyle.Render(filter), "")

	height := s.listHeight()
	if s.input.Visible() {
		height = max(height-lipgloss.Height(s.input.View()), 1)
	}
	selected := s.listing.Selected
	if selected < s.offset {
		s.offset = selected
	}
	if selected >= s.offset+height {
		s.offset = selected - height + 1
	}

	if len(s.listing.Entries) == 0 {
		lines = append(lines, s.theme.HintStyle.Render(s.catalog.T("open.empty")))
	}
	end := min(s.offset+height, len(s.listing.Entries))
	for i := s.offset; i < end; i++ {
		e := s.listing.Entries[i]
		name := runewidth.Truncate(e.DisplayName(), max(width-14, 8), "…")
		size := ""
		if !e.IsDir {
			size = humanSize(e.Size)
		}
		style := s.theme.TextStyle
		prefix := "  "
		if i == selected {
			style = s.theme.SelectedStyle
			prefix = "→ "
		}
		pad := max(width-12-runewidth.StringWidth(name), 1)
		lines = append(lines, style.Render(prefix+name)+strings.Repeat(" ", pad)+s.theme.HintStyle.Render(size))
	}

	if s.input.Visible() {
		lines = append(lines, s.input.View())
	}
	if s.err != nil {
		lines = append(lines, s.theme.ErrorMessage(s.err.Error()))
	}
	lines = append(lines, s.theme.HintStyle.Render(s.ShortHelp()))
	return strings.Join(lines, "\n")
}

func (s *OpenScreen) ShortHelp() string {
	return s.catalog.T("open.hint")
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
