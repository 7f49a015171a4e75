package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/workspace"
)

const titleSeparator = " - "

// saveGate очередь вкладок, для которых нужно спросить о сохранении
// перед закрытием или выходом. Вкладки обходятся по одной; отмена
// на любой из них прерывает всю операцию.
type saveGate struct {
	pending []*workspace.Tab
	close   bool           // закрывать вкладки после ответа
	then    func() tea.Cmd // продолжение после обхода всех вкладок
}

func (g *saveGate) pop() {
	g.pending = g.pending[1:]
}

// startGate запускает обход вкладок; уже идущий обход не прерывается
func (a *App) startGate(tabs []*workspace.Tab, closing bool, then func() tea.Cmd) tea.Cmd {
	if a.gate != nil {
		return nil
	}
	pending := make([]*workspace.Tab, len(tabs))
	copy(pending, tabs)
	a.gate = &saveGate{pending: pending, close: closing, then: then}
	return a.advanceGate()
}

// advanceGate пропускает неизмененные вкладки и спрашивает о первой измененной
func (a *App) advanceGate() tea.Cmd {
	g := a.gate
	if g == nil {
		return nil
	}
	for len(g.pending) > 0 {
		tab := g.pending[0]
		i := a.tabIndex(tab)
		if i < 0 {
			g.pop()
			continue
		}
		if !tab.Doc.Modified() {
			g.pop()
			if g.close {
				a.manager.ForceClose(i)
			}
			continue
		}
		a.manager.Select(i)
		a.choice.Title = tab.Doc.DisplayName() + titleSeparator + a.catalog.T("app.name")
		ch := a.choice.Show(a.catalog.T("dialog.maybe_save"))
		return components.Await(ch, func(c components.Choice) tea.Msg { return saveChoiceMsg{choice: c} })
	}
	a.gate = nil
	if g.then != nil {
		return g.then()
	}
	return nil
}

// handleSaveChoice ответ на вопрос о сохранении текущей вкладки обхода
func (a *App) handleSaveChoice(choice components.Choice) tea.Cmd {
	g := a.gate
	if g == nil || len(g.pending) == 0 {
		return nil
	}
	tab := g.pending[0]
	i := a.tabIndex(tab)
	a.log.Debugf("save prompt for %s: %s", tab.Doc.DisplayName(), choice)

	switch choice {
	case components.ChoiceDiscard:
		g.pop()
		if g.close && i >= 0 {
			a.manager.ForceClose(i)
		}
		return a.advanceGate()
	case components.ChoiceSave:
		if i < 0 {
			g.pop()
			return a.advanceGate()
		}
		abort := func() tea.Cmd {
			a.gate = nil
			return nil
		}
		after := func(err error) tea.Cmd {
			if err != nil {
				a.gate = nil
				return a.showError(err)
			}
			// сохраненная вкладка больше не изменена и пропускается
			return a.advanceGate()
		}
		if tab.Doc.Untitled() {
			return a.promptSaveAs(i, after, abort)
		}
		return after(a.save(i))
	default:
		a.gate = nil
		return nil
	}
}

// tabIndex индекс вкладки или -1, если она уже закрыта
func (a *App) tabIndex(tab *workspace.Tab) int {
	for i, t := range a.manager.Tabs() {
		if t == tab {
			return i
		}
	}
	return -1
}

// requestQuit выход после проверки всех вкладок
func (a *App) requestQuit() tea.Cmd {
	modified := a.manager.ModifiedTabs()
	tabs := make([]*workspace.Tab, 0, len(modified))
	for _, i := range modified {
		tabs = append(tabs, a.manager.Tab(i))
	}
	return a.startGate(tabs, false, func() tea.Cmd {
		a.quitting = true
		a.log.Infof("quit")
		return tea.Quit
	})
}

// closeTab закрывает вкладку i через вопрос о сохранении
func (a *App) closeTab(i int) tea.Cmd {
	tab := a.manager.Tab(i)
	if tab == nil {
		return nil
	}
	return a.startGate([]*workspace.Tab{tab}, true, nil)
}

// closeAll закрывает все вкладки; после последней остается пустая Untitled1.txt
func (a *App) closeAll() tea.Cmd {
	return a.startGate(a.manager.Tabs(), true, nil)
}
