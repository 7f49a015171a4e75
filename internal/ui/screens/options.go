package screens

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/ui/styles"
)

const (
	optionsLabelWidth = 34
	minFontSize       = 6
	maxFontSize       = 72
)

type optionKind int

const (
	optionToggle optionKind = iota
	optionTheme
	optionLanguage
	optionColour
	optionFontFamily
	optionFontSize
	optionBold
	optionResetColours
)

// optionRow строка экрана параметров
type optionRow struct {
	label  string // ключ каталога сообщений
	kind   optionKind
	toggle *bool
	colour settings.ColorTarget
}

// optionInputMsg результат ввода цвета или шрифта
type optionInputMsg struct {
	row    int
	result components.InputResult
}

// OptionsScreen экран параметров: тема, язык, панели, цвета и шрифт.
// Изменения применяются сразу и сохраняются при выходе из программы.
type OptionsScreen struct {
	BaseScreen

	theme    *styles.Theme
	catalog  *i18n.Catalog
	settings *settings.Settings
	input    *components.InputDialog
	rows     []optionRow
	selected int
}

// NewOptionsScreen создает экран параметров
func NewOptionsScreen(theme *styles.Theme, catalog *i18n.Catalog, s *settings.Settings) *OptionsScreen {
	op := &OptionsScreen{
		BaseScreen: NewBaseScreen(catalog.T("options.title")),
		theme:      theme,
		catalog:    catalog,
		settings:   s,
		input:      components.NewInputDialog(),
	}
	op.rows = []optionRow{
		{label: "options.theme", kind: optionTheme},
		{label: "options.language", kind: optionLanguage},
		{label: "options.menu", kind: optionToggle, toggle: &s.ShowMenu},
		{label: "options.statusbar", kind: optionToggle, toggle: &s.ShowStatusBar},
		{label: "options.toolbar", kind: optionToggle, toggle: &s.ShowToolbar},
		{label: "options.tabbar", kind: optionToggle, toggle: &s.ShowTabBar},
		{label: "options.vertical", kind: optionToggle, toggle: &s.VerticalTabBar},
		{label: "options.close_btn", kind: optionToggle, toggle: &s.TabCloseButton},
		{label: "options.wrap", kind: optionToggle, toggle: &s.WrapText},
		{label: "options.whitespace", kind: optionToggle, toggle: &s.ShowSpaceTab},
	}
	for _, target := range settings.AllColorTargets() {
		op.rows = append(op.rows, optionRow{label: colourLabel(target), kind: optionColour, colour: target})
	}
	op.rows = append(op.rows,
		optionRow{label: "options.reset", kind: optionResetColours},
		optionRow{label: "options.font_family", kind: optionFontFamily},
		optionRow{label: "options.font_size", kind: optionFontSize},
		optionRow{label: "options.bold", kind: optionBold},
		optionRow{label: "options.italic", kind: optionToggle, toggle: &s.FontItalic},
	)
	return op
}

func colourLabel(target settings.ColorTarget) string {
	switch target {
	case settings.TextColor:
		return "colour.text"
	case settings.BackgroundColor:
		return "colour.background"
	case settings.CurrentLineColor:
		return "colour.current_line"
	case settings.GutterTextColor:
		return "colour.gutter_text"
	default:
		return "colour.gutter_background"
	}
}

func (op *OptionsScreen) Init() tea.Cmd {
	return nil
}

func (op *OptionsScreen) OnEnter() tea.Cmd {
	op.SetTitle(op.catalog.T("options.title"))
	return nil
}

// CanExit нельзя уйти с экрана, пока открыто окно ввода
func (op *OptionsScreen) CanExit() bool {
	return !op.input.Visible()
}

func (op *OptionsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		op.SetSize(m.Width, m.Height)
		op.input.SetWidth(min(m.Width-10, 50))
		return op, nil
	case optionInputMsg:
		return op, op.applyInput(m)
	case tea.KeyMsg:
		if op.input.Visible() {
			return op, op.input.Update(m)
		}
		switch m.String() {
		case "up", "k", "shift+tab":
			if op.selected > 0 {
				op.selected--
			}
		case "down", "j", "tab":
			if op.selected < len(op.rows)-1 {
				op.selected++
			}
		case "home":
			op.selected = 0
		case "end":
			op.selected = len(op.rows) - 1
		case "left", "h":
			return op, op.change(-1)
		case "right", "l", "enter", " ":
			return op, op.change(1)
		case "esc", "q":
			return op, func() tea.Msg { return BackMsg{} }
		}
	}
	return op, nil
}

func changed() tea.Msg { return SettingsChangedMsg{} }

// change меняет значение выбранной строки; delta задает направление для размера шрифта
func (op *OptionsScreen) change(delta int) tea.Cmd {
	row := op.rows[op.selected]
	s := op.settings
	switch row.kind {
	case optionToggle:
		*row.toggle = !*row.toggle
	case optionTheme:
		if s.Dark() {
			s.Style = settings.ThemeLight
		} else {
			s.Style = settings.ThemeDark
		}
	case optionLanguage:
		if s.Language == settings.LanguageRussian {
			s.Language = settings.LanguageEnglish
		} else {
			s.Language = settings.LanguageRussian
		}
		op.catalog.SetLanguage(i18n.ParseLanguage(s.Language))
		op.SetTitle(op.catalog.T("options.title"))
	case optionBold:
		s.SetBold(!s.Bold())
	case optionFontSize:
		size := s.FontSize + delta
		if size < minFontSize || size > maxFontSize {
			return nil
		}
		s.FontSize = size
	case optionResetColours:
		if delta < 0 {
			return nil
		}
		s.ResetColors()
	case optionColour:
		if delta < 0 {
			return nil
		}
		ch := op.input.Show(op.catalog.T("dialog.colour_title"), op.catalog.T(row.label), s.Color(row.colour))
		op.input.Hint = op.catalog.T("hints.dialog")
		op.input.Validate = func(v string) error {
			_, err := settings.ParseColor(v)
			return err
		}
		return op.await(ch)
	case optionFontFamily:
		if delta < 0 {
			return nil
		}
		ch := op.input.Show(op.catalog.T("dialog.font_title"), op.catalog.T("dialog.font_label"), s.FontFamily)
		op.input.Hint = op.catalog.T("hints.dialog")
		op.input.Validate = func(v string) error {
			if v == "" {
				return errors.New(op.catalog.T("dialog.font_label"))
			}
			return nil
		}
		return op.await(ch)
	}
	return changed
}

func (op *OptionsScreen) await(ch <-chan components.InputResult) tea.Cmd {
	row := op.selected
	return components.Await(ch, func(r components.InputResult) tea.Msg {
		return optionInputMsg{row: row, result: r}
	})
}

func (op *OptionsScreen) applyInput(m optionInputMsg) tea.Cmd {
	if !m.result.OK || m.row < 0 || m.row >= len(op.rows) {
		return nil
	}
	row := op.rows[m.row]
	switch row.kind {
	case optionColour:
		if err := op.settings.SetColor(row.colour, m.result.Value); err != nil {
			return nil
		}
	case optionFontFamily:
		op.settings.FontFamily = m.result.Value
	default:
		return nil
	}
	return changed
}

// value текстовое значение строки
func (op *OptionsScreen) value(row optionRow) string {
	s := op.settings
	onOff := func(v bool) string {
		if v {
			return op.catalog.T("options.on")
		}
		return op.catalog.T("options.off")
	}
	switch row.kind {
	case optionToggle:
		return onOff(*row.toggle)
	case optionTheme:
		return s.Style
	case optionLanguage:
		return i18n.ParseLanguage(s.Language).Name()
	case optionColour:
		c := s.Color(row.colour)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("    ")
		return swatch + " " + c
	case optionFontFamily:
		return s.FontFamily
	case optionFontSize:
		return "< " + strconv.Itoa(s.FontSize) + " >"
	case optionBold:
		return onOff(s.Bold())
	}
	return ""
}

func (op *OptionsScreen) View() string {
	width := max(op.Width(), 20)
	var lines []string
	for i, row := range op.rows {
		label := op.catalog.T(row.label)
		style := op.theme.TextStyle
		prefix := "  "
		if i == op.selected {
			style = op.theme.SelectedStyle
			prefix = "→ "
		}
		cell := style.Width(optionsLabelWidth).Render(prefix + label)
		lines = append(lines, cell+op.value(row))
	}

	body := strings.Join(lines, "\n")
	if op.input.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", op.input.View())
	}

	return strings.Join([]string{
		op.theme.TitleBar(op.Title()),
		lipgloss.NewStyle().Padding(1, 2).Width(width).Render(body),
		op.theme.HintStyle.Render(op.ShortHelp()),
	}, "\n")
}

func (op *OptionsScreen) ShortHelp() string {
	return op.catalog.T("options.hint")
}
