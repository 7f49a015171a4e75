package styles

import (
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/settings"
)

// Theme содержит все стили приложения
type Theme struct {
	// Размеры экрана
	width  int
	height int

	// Цветовая схема
	colors ColorScheme

	// Стили компонентов
	StatusBarStyle   lipgloss.Style
	TitleStyle       lipgloss.Style
	HintStyle        lipgloss.Style
	TextStyle        lipgloss.Style
	HighlightStyle   lipgloss.Style
	ErrorStyle       lipgloss.Style
	NoticeStyle      lipgloss.Style
	BorderStyle      lipgloss.Style
	DialogStyle      lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	InactiveTabStyle lipgloss.Style
	ButtonStyle      lipgloss.Style
	ActiveButton     lipgloss.Style
	SelectedStyle    lipgloss.Style
}

// ColorScheme цветовая схема оболочки (вкладки, строка состояния, диалоги)
type ColorScheme struct {
	Primary     string
	Background  string
	Surface     string
	Text        string
	TextDim     string
	Error       string
	Notice      string
	Border      string
	BorderFocus string
}

// Предустановленные цветовые схемы
var (
	DarkScheme = ColorScheme{
		Primary:     "#3B82F6",
		Background:  "#0F172A",
		Surface:     "#1E293B",
		Text:        "#F1F5F9",
		TextDim:     "#94A3B8",
		Error:       "#EF4444",
		Notice:      "#F59E0B",
		Border:      "#334155",
		BorderFocus: "#3B82F6",
	}

	LightScheme = ColorScheme{
		Primary:     "#0063B1", // синий Windows
		Background:  "#FFFFFF",
		Surface:     "#F0F0F0",
		Text:        "#000000",
		TextDim:     "#5A5A5A",
		Error:       "#C42B1C",
		Notice:      "#9A6700",
		Border:      "#C0C0C0",
		BorderFocus: "#0063B1",
	}
)

// NewTheme создает тему по имени из настроек; неизвестное имя дает светлую
func NewTheme(themeName string) *Theme {
	theme := &Theme{}
	theme.SetScheme(themeName)
	return theme
}

// SetScheme переключает цветовую схему на месте, экраны держат указатель на тему
func (t *Theme) SetScheme(themeName string) {
	t.colors = LightScheme
	if themeName == settings.ThemeDark {
		t.colors = DarkScheme
	}
	t.initStyles()
}

// Colors текущая цветовая схема
func (t *Theme) Colors() ColorScheme {
	return t.colors
}

// initStyles инициализирует стили
func (t *Theme) initStyles() {
	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.TitleStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Bold(true).
		Padding(0, 1)

	t.HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim))

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Text))

	t.HighlightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Error)).
		Bold(true)

	t.NoticeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Notice))

	t.BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.colors.Border))

	t.DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.colors.BorderFocus)).
		Padding(1, 2)

	t.ActiveTabStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Primary)).
		Foreground(lipgloss.Color(t.colors.Background)).
		Padding(0, 1).
		Bold(true)

	t.InactiveTabStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Padding(0, 1)

	t.ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.ActiveButton = t.ButtonStyle.
		Background(lipgloss.Color(t.colors.Primary)).
		Foreground(lipgloss.Color(t.colors.Background)).
		Bold(true)

	t.SelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true)
}

// EditorStyle стили редактора из пользовательских цветов и шрифта
func EditorStyle(s *settings.Settings) editor.Style {
	style := editor.DefaultStyle()

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Color(settings.TextColor))).
		Background(lipgloss.Color(s.Color(settings.BackgroundColor))).
		Bold(s.Bold()).
		Italic(s.FontItalic)
	style.Text = text
	style.CurrentLine = lipgloss.NewStyle().Background(lipgloss.Color(s.Color(settings.CurrentLineColor)))

	gutter := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Color(settings.GutterTextColor))).
		Background(lipgloss.Color(s.Color(settings.GutterBackgroundColor)))
	style.Gutter = editor.GutterStyle{
		Number: gutter,
		Active: gutter.Bold(true),
	}
	return style
}

// SetDimensions устанавливает размеры экрана
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину экрана
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту экрана
func (t *Theme) Height() int {
	return t.height
}

// StatusBar рендерит строку состояния во всю ширину
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(max(t.width, 1)).
		Render(text)
}

// TitleBar рендерит строку заголовка во всю ширину
func (t *Theme) TitleBar(title string) string {
	return t.TitleStyle.
		Width(max(t.width, 1)).
		Render(title)
}

// ErrorMessage рендерит сообщение об ошибке
func (t *Theme) ErrorMessage(text string) string {
	return t.ErrorStyle.Render(text)
}

// Notice рендерит уведомление
func (t *Theme) Notice(text string) string {
	return t.NoticeStyle.Render(text)
}
