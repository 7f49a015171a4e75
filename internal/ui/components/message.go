package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MessageBox окно с сообщением и кнопкой Ok
type MessageBox struct {
	Title  string
	Text   string
	OkText string
	Style  lipgloss.Style

	modal[struct{}]
}

// NewMessageBox создает окно сообщения
func NewMessageBox() *MessageBox {
	return &MessageBox{
		OkText: "Ok",
		Style:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Show открывает окно; канал закрывается ответом после нажатия Enter или Esc
func (m *MessageBox) Show(title, text string) <-chan struct{} {
	m.Title = title
	m.Text = text
	return m.show()
}

// Update закрывает окно по Enter, Esc или пробелу
func (m *MessageBox) Update(msg tea.Msg) tea.Cmd {
	if !m.Visible() {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			m.respond(struct{}{})
		}
	}
	return nil
}

// View отрисовывает окно
func (m *MessageBox) View() string {
	if !m.Visible() {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Title))
	b.WriteString("\n\n")
	b.WriteString(m.Text)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Reverse(true).Padding(0, 1).Render(m.OkText))
	return m.Style.Render(b.String())
}
