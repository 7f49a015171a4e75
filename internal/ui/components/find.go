package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/document"
)

// FindAction действие панели поиска
type FindAction int

const (
	FindNext FindAction = iota
	ReplaceOne
	ReplaceAll
)

// FindRequestMsg запрос поиска или замены в текущем документе
type FindRequestMsg struct {
	Action      FindAction
	Query       string
	Replacement string
	Options     document.FindOptions
}

// FindClosedMsg панель поиска закрыта
type FindClosedMsg struct{}

// FindLabels подписи панели поиска
type FindLabels struct {
	Title, ReplaceTitle string
	What, With          string
	Case, Whole, Wrap   string
	Hint                string
}

// FindDialog панель «Найти» / «Заменить»
type FindDialog struct {
	Labels  FindLabels
	Style   lipgloss.Style
	Options document.FindOptions

	query       textinput.Model
	replace     textinput.Model
	replaceMode bool
	visible     bool
	focus       int // 0 поле поиска, 1 поле замены
}

// NewFindDialog создает панель поиска
func NewFindDialog() *FindDialog {
	q := textinput.New()
	q.Prompt = ""
	q.Width = 30
	r := textinput.New()
	r.Prompt = ""
	r.Width = 30
	return &FindDialog{
		Labels: FindLabels{
			Title: "Find", ReplaceTitle: "Replace",
			What: "Find what:", With: "Replace with:",
			Case: "Match case", Whole: "Whole word", Wrap: "Wrap around",
		},
		Style:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Options: document.FindOptions{WrapAround: true},
		query:   q,
		replace: r,
	}
}

// Open показывает панель; seed подставляется в поле поиска, если не пуст
func (d *FindDialog) Open(replaceMode bool, seed string) {
	d.replaceMode = replaceMode
	d.visible = true
	if seed != "" && !strings.Contains(seed, "\n") {
		d.query.SetValue(seed)
	}
	d.query.CursorEnd()
	d.setFocus(0)
}

// Close скрывает панель
func (d *FindDialog) Close() {
	d.visible = false
	d.query.Blur()
	d.replace.Blur()
}

// Visible открыта ли панель
func (d *FindDialog) Visible() bool {
	return d.visible
}

// ReplaceMode показаны ли поля замены
func (d *FindDialog) ReplaceMode() bool {
	return d.replaceMode
}

// Query текст поиска
func (d *FindDialog) Query() string {
	return d.query.Value()
}

// Request запрос с текущими значениями полей
func (d *FindDialog) Request(action FindAction) FindRequestMsg {
	return FindRequestMsg{
		Action:      action,
		Query:       d.query.Value(),
		Replacement: d.replace.Value(),
		Options:     d.Options,
	}
}

func (d *FindDialog) setFocus(i int) {
	if !d.replaceMode {
		i = 0
	}
	d.focus = i
	if i == 0 {
		d.query.Focus()
		d.replace.Blur()
	} else {
		d.replace.Focus()
		d.query.Blur()
	}
}

func (d *FindDialog) emit(action FindAction) tea.Cmd {
	if d.query.Value() == "" {
		return nil
	}
	req := d.Request(action)
	return func() tea.Msg { return req }
}

// Update обрабатывает клавиши панели
func (d *FindDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			d.Close()
			return func() tea.Msg { return FindClosedMsg{} }
		case "enter", "f3":
			return d.emit(FindNext)
		case "alt+r":
			if d.replaceMode {
				return d.emit(ReplaceOne)
			}
			return nil
		case "alt+a":
			if d.replaceMode {
				return d.emit(ReplaceAll)
			}
			return nil
		case "tab", "shift+tab", "up", "down":
			d.setFocus(1 - d.focus)
			return nil
		case "alt+c":
			d.Options.CaseSensitive = !d.Options.CaseSensitive
			return nil
		case "alt+b":
			d.Options.WholeWord = !d.Options.WholeWord
			return nil
		case "alt+o":
			d.Options.WrapAround = !d.Options.WrapAround
			return nil
		}
	}
	var cmd tea.Cmd
	if d.focus == 0 {
		d.query, cmd = d.query.Update(msg)
	} else {
		d.replace, cmd = d.replace.Update(msg)
	}
	return cmd
}

func checkbox(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

// View отрисовывает панель
func (d *FindDialog) View() string {
	if !d.visible {
		return ""
	}
	title := d.Labels.Title
	if d.replaceMode {
		title = d.Labels.ReplaceTitle
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		d.Labels.What + " " + d.query.View(),
	}
	if d.replaceMode {
		lines = append(lines, d.Labels.With+" "+d.replace.View())
	}
	lines = append(lines, strings.Join([]string{
		checkbox(d.Options.CaseSensitive, d.Labels.Case),
		checkbox(d.Options.WholeWord, d.Labels.Whole),
		checkbox(d.Options.WrapAround, d.Labels.Wrap),
	}, "  "))
	if d.Labels.Hint != "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(d.Labels.Hint))
	}
	return d.Style.Render(strings.Join(lines, "\n"))
}
