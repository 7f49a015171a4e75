package editor

import "github.com/charmbracelet/lipgloss"

// Style стили отрисовки редактора
type Style struct {
	Text        lipgloss.Style
	CurrentLine lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Search      lipgloss.Style
	Whitespace  lipgloss.Style
	Gutter      GutterStyle
}

// DefaultStyle стили по умолчанию, совпадающие с цветами классического Блокнота
func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#d3d3d3"))
	return Style{
		Text:        lipgloss.NewStyle(),
		CurrentLine: lipgloss.NewStyle().Background(lipgloss.Color("#ddddf3")),
		Selection:   lipgloss.NewStyle().Reverse(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Search:      lipgloss.NewStyle().Background(lipgloss.Color("#9bff9b")).Foreground(lipgloss.Color("#000000")),
		Whitespace:  lipgloss.NewStyle().Faint(true),
		Gutter: GutterStyle{
			Number: gutter,
			Active: gutter.Bold(true),
		},
	}
}
