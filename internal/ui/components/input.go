package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputResult значение, введенное в окне
type InputResult struct {
	Value string
	OK    bool
}

// InputDialog окно ввода одной строки
type InputDialog struct {
	Title string
	Label string
	Hint  string
	Style lipgloss.Style
	// Validate проверяет значение перед подтверждением; ошибка показывается в окне
	Validate func(string) error

	input textinput.Model
	err   error
	modal[InputResult]
}

// NewInputDialog создает окно ввода
func NewInputDialog() *InputDialog {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 40
	return &InputDialog{
		input: ti,
		Hint:  "Enter: confirm  Esc: cancel",
		Style: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// Show открывает окно с начальным значением
func (d *InputDialog) Show(title, label, value string) <-chan InputResult {
	d.Title = title
	d.Label = label
	d.err = nil
	d.Validate = nil
	d.input.SetValue(value)
	d.input.CursorEnd()
	d.input.Focus()
	return d.show()
}

// SetWidth задает ширину поля ввода
func (d *InputDialog) SetWidth(width int) {
	d.input.Width = max(width, 10)
}

// Value текущее значение поля
func (d *InputDialog) Value() string {
	return d.input.Value()
}

// Update обрабатывает ввод
func (d *InputDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.Visible() {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(d.input.Value())
			if d.Validate != nil {
				if err := d.Validate(value); err != nil {
					d.err = err
					return nil
				}
			}
			d.input.Blur()
			d.respond(InputResult{Value: value, OK: true})
			return nil
		case "esc":
			d.input.Blur()
			d.respond(InputResult{})
			return nil
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.err = nil
	return cmd
}

// View отрисовывает окно
func (d *InputDialog) View() string {
	if !d.Visible() {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(d.Title))
	b.WriteString("\n\n")
	if d.Label != "" {
		b.WriteString(d.Label)
		b.WriteString("\n")
	}
	b.WriteString(d.input.View())
	if d.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(d.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(d.Hint))
	return d.Style.Render(b.String())
}
