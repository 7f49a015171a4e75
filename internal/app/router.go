package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenRouter управляет переключением между экранами
type ScreenRouter struct {
	app     *App
	history []ScreenType // История переходов для навигации назад
}

// NewScreenRouter создает новый роутер
func NewScreenRouter(app *App) *ScreenRouter {
	return &ScreenRouter{
		app:     app,
		history: make([]ScreenType, 0),
	}
}

// SwitchTo переключается на указанный экран
func (r *ScreenRouter) SwitchTo(screenType ScreenType) tea.Cmd {
	if screenType == r.app.currentScreen {
		return nil
	}
	// Добавляем текущий экран в историю
	if len(r.history) == 0 || r.history[len(r.history)-1] != r.app.currentScreen {
		r.history = append(r.history, r.app.currentScreen)
	}

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: screenType}
	}
}

// Toggle открывает экран или возвращается назад, если он уже открыт
func (r *ScreenRouter) Toggle(screenType ScreenType) tea.Cmd {
	if r.app.currentScreen == screenType {
		return r.GoBack()
	}
	return r.SwitchTo(screenType)
}

// GoBack возвращается к предыдущему экрану из истории; без истории к рабочей области
func (r *ScreenRouter) GoBack() tea.Cmd {
	target := WorkspaceScreen
	if r.CanNavigateBack() {
		// Берем последний экран из истории
		target = r.history[len(r.history)-1]
		r.history = r.history[:len(r.history)-1]
	}

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: target}
	}
}

// CanNavigateBack проверяет, можно ли вернуться назад
func (r *ScreenRouter) CanNavigateBack() bool {
	return len(r.history) > 0
}

// ClearHistory очищает историю навигации
func (r *ScreenRouter) ClearHistory() {
	r.history = r.history[:0]
}
