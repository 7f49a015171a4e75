package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog предоставляет переиспользуемое окно подтверждения.
type ConfirmDialog struct {
	Title       string
	Description string
	ConfirmText string
	CancelText  string
	Style       lipgloss.Style

	modal[bool]
}

// NewConfirmDialog создает диалог с дефолтными кнопками.
func NewConfirmDialog(title, description string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:       title,
		Description: description,
		ConfirmText: "Yes",
		CancelText:  "No",
		Style:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Show делает диалог видимым и возвращает канал результата.
func (d *ConfirmDialog) Show() <-chan bool {
	return d.show()
}

// Update обрабатывает нажатия.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.Visible() {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "enter":
			d.respond(true)
		case "n", "esc":
			d.respond(false)
		}
	}
	return nil
}

// View отрисовывает диалог поверх остальных компонентов.
func (d *ConfirmDialog) View() string {
	if !d.Visible() {
		return ""
	}
	titleView := lipgloss.NewStyle().Bold(true).Render(d.Title)
	hint := lipgloss.NewStyle().Faint(true).
		Render(fmt.Sprintf("%s: %s  %s: %s", d.ConfirmText, "Enter", d.CancelText, "Esc"))
	return d.Style.Render(fmt.Sprintf("%s\n\n%s\n\n%s", titleView, d.Description, hint))
}
