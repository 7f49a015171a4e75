package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice ответ на вопрос о сохранении
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceSave
	ChoiceDiscard
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// ChoiceDialog окно с тремя кнопками: сохранить, не сохранять, отмена
type ChoiceDialog struct {
	Title       string
	Description string
	SaveText    string
	DiscardText string
	CancelText  string
	Style       lipgloss.Style
	ButtonStyle lipgloss.Style
	ActiveStyle lipgloss.Style

	focus Choice
	modal[Choice]
}

// NewChoiceDialog создает окно с английскими подписями
func NewChoiceDialog(title string) *ChoiceDialog {
	return &ChoiceDialog{
		Title:       title,
		SaveText:    "Save",
		DiscardText: "Discard",
		CancelText:  "Cancel",
		Style:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		ButtonStyle: lipgloss.NewStyle().Padding(0, 1),
		ActiveStyle: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}

// Show открывает окно с фокусом на кнопке «Сохранить»
func (d *ChoiceDialog) Show(description string) <-chan Choice {
	d.Description = description
	d.focus = ChoiceSave
	return d.show()
}

// Focused кнопка под фокусом
func (d *ChoiceDialog) Focused() Choice {
	return d.focus
}

var choiceOrder = []Choice{ChoiceSave, ChoiceDiscard, ChoiceCancel}

// Update обрабатывает нажатия
func (d *ChoiceDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.Visible() {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "shift+tab":
		d.focus = choiceOrder[(d.index()+len(choiceOrder)-1)%len(choiceOrder)]
	case "right", "tab":
		d.focus = choiceOrder[(d.index()+1)%len(choiceOrder)]
	case "enter", " ":
		d.respond(d.focus)
	case "s", "y":
		d.respond(ChoiceSave)
	case "d", "n":
		d.respond(ChoiceDiscard)
	case "esc", "c":
		d.respond(ChoiceCancel)
	}
	return nil
}

func (d *ChoiceDialog) index() int {
	for i, c := range choiceOrder {
		if c == d.focus {
			return i
		}
	}
	return 0
}

// View отрисовывает окно
func (d *ChoiceDialog) View() string {
	if !d.Visible() {
		return ""
	}
	labels := map[Choice]string{
		ChoiceSave:    d.SaveText,
		ChoiceDiscard: d.DiscardText,
		ChoiceCancel:  d.CancelText,
	}
	buttons := make([]string, 0, len(choiceOrder))
	for _, c := range choiceOrder {
		style := d.ButtonStyle
		if c == d.focus {
			style = d.ActiveStyle
		}
		buttons = append(buttons, style.Render("["+labels[c]+"]"))
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Description)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	return d.Style.Render(b.String())
}
