package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/ui/components"
)

type saveChoiceMsg struct {
	choice components.Choice
}

type inputResultMsg struct {
	result components.InputResult
}

type confirmResultMsg struct {
	ok bool
}

type messageClosedMsg struct{}

// pendingMessage сообщение, ждущее закрытия текущего окна
type pendingMessage struct {
	title, text string
}

// initDialogs создает модальные окна с подписями текущего языка и темы
func (a *App) initDialogs() {
	t := a.catalog.T
	style := a.theme.DialogStyle

	if a.choice == nil {
		a.choice = components.NewChoiceDialog(t("app.name"))
	}
	a.choice.SaveText = t("dialog.save")
	a.choice.DiscardText = t("dialog.discard")
	a.choice.CancelText = t("dialog.cancel")
	a.choice.Style = style
	a.choice.ButtonStyle = a.theme.ButtonStyle
	a.choice.ActiveStyle = a.theme.ActiveButton

	if a.confirm == nil {
		a.confirm = components.NewConfirmDialog(t("app.name"), "")
	}
	a.confirm.ConfirmText = t("dialog.yes")
	a.confirm.CancelText = t("dialog.no")
	a.confirm.Style = style

	if a.input == nil {
		a.input = components.NewInputDialog()
	}
	a.input.Hint = t("hints.dialog")
	a.input.Style = style

	if a.message == nil {
		a.message = components.NewMessageBox()
	}
	a.message.OkText = t("dialog.ok")
	a.message.Style = style
}

// handleDialogKey передает нажатие открытому модальному окну
func (a *App) handleDialogKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case a.message.Visible():
		return a.message.Update(msg), true
	case a.choice.Visible():
		return a.choice.Update(msg), true
	case a.confirm.Visible():
		return a.confirm.Update(msg), true
	case a.input.Visible():
		return a.input.Update(msg), true
	}
	return nil, false
}

// dialogView открытое модальное окно или пустая строка
func (a *App) dialogView() string {
	switch {
	case a.message.Visible():
		return a.message.View()
	case a.choice.Visible():
		return a.choice.View() + "\n" + a.theme.HintStyle.Render(a.catalog.T("hints.save_prompt"))
	case a.confirm.Visible():
		return a.confirm.View()
	case a.input.Visible():
		return a.input.View()
	}
	return ""
}

// showMessage показывает окно с сообщением
func (a *App) showMessage(text string) tea.Cmd {
	return a.showTitled(a.catalog.T("app.name"), text)
}

// showTitled показывает сообщение; если окно уже открыто, сообщение
// встает в очередь и появится после его закрытия
func (a *App) showTitled(title, text string) tea.Cmd {
	if a.message.Visible() {
		a.pending = append(a.pending, pendingMessage{title: title, text: text})
		return nil
	}
	ch := a.message.Show(title, text)
	return components.Await(ch, func(struct{}) tea.Msg { return messageClosedMsg{} })
}

// handleMessageClosed показывает следующее сообщение из очереди
func (a *App) handleMessageClosed() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	next := a.pending[0]
	a.pending = a.pending[1:]
	return a.showTitled(next.title, next.text)
}

// askInput запрашивает строку; onOK вызывается с введенным значением
func (a *App) askInput(title, label, value string, validate func(string) error, onOK func(string) tea.Cmd, onCancel func() tea.Cmd) tea.Cmd {
	if a.input.Visible() {
		return nil
	}
	width := 50
	if w := a.theme.Width(); w > 0 {
		width = min(max(w-12, 10), 70)
	}
	a.input.SetWidth(width)
	ch := a.input.Show(title, label, value)
	a.input.Validate = validate
	a.onInput = onOK
	a.onInputCancel = onCancel
	return components.Await(ch, func(r components.InputResult) tea.Msg { return inputResultMsg{result: r} })
}

func (a *App) handleInputResult(r components.InputResult) tea.Cmd {
	onOK, onCancel := a.onInput, a.onInputCancel
	a.onInput, a.onInputCancel = nil, nil
	if !r.OK {
		if onCancel != nil {
			return onCancel()
		}
		return nil
	}
	if onOK != nil {
		return onOK(r.Value)
	}
	return nil
}

// askConfirm задает вопрос да/нет; onOK вызывается при подтверждении, onCancel при отказе
func (a *App) askConfirm(text string, onOK, onCancel func() tea.Cmd) tea.Cmd {
	if a.confirm.Visible() {
		return nil
	}
	a.confirm.Title = a.catalog.T("app.name")
	a.confirm.Description = text
	a.onConfirm = onOK
	a.onConfirmCancel = onCancel
	ch := a.confirm.Show()
	return components.Await(ch, func(ok bool) tea.Msg { return confirmResultMsg{ok: ok} })
}

func (a *App) handleConfirmResult(ok bool) tea.Cmd {
	onOK, onCancel := a.onConfirm, a.onConfirmCancel
	a.onConfirm, a.onConfirmCancel = nil, nil
	next := onCancel
	if ok {
		next = onOK
	}
	if next == nil {
		return nil
	}
	return next()
}
