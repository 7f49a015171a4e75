package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleGlobalKeys обрабатывает глобальные горячие клавиши
func (a *App) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Открытое модальное окно забирает все нажатия
	if cmd, ok := a.handleDialogKey(msg); ok {
		return a, cmd
	}

	// Сначала пытаемся найти команду через реестр
	if cmd := a.commands.Resolve(msg.String(), a.currentScreen, a); cmd != nil {
		return a, cmd.Run(a)
	}

	// Если глобальные клавиши не обработаны, передаем экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Обновляем размеры в теме
	a.theme.SetDimensions(msg.Width, msg.Height)
	a.settings.Width = msg.Width
	a.settings.Height = msg.Height
	a.input.SetWidth(min(max(msg.Width-12, 10), 70))

	// Передаем всем экранам
	var cmds []tea.Cmd
	for screenType, screen := range a.screens {
		if screen != nil {
			updatedScreen, cmd := screen.Update(msg)
			a.screens[screenType] = updatedScreen
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleScreenSwitch обрабатывает переключение экранов
func (a *App) handleScreenSwitch(msg ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	return a, a.activate(msg.ScreenType)
}

// activate делает экран текущим: OnExit старого, размеры, Init и OnEnter нового
func (a *App) activate(screenType ScreenType) tea.Cmd {
	if screenType == a.currentScreen {
		return nil
	}

	// Проверяем, можно ли покинуть текущий экран
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil && !currentScreen.CanExit() {
		return nil
	}

	// Выходим из текущего экрана
	var cmds []tea.Cmd
	if currentScreen != nil {
		if exit := currentScreen.OnExit(); exit != nil {
			cmds = append(cmds, exit)
		}
	}

	// Переключаемся на новый экран
	a.currentScreen = screenType

	// Инициализируем новый экран если нужно
	newScreen := a.screens[a.currentScreen]
	created := false
	if newScreen == nil {
		newScreen = a.createScreen(a.currentScreen)
		a.screens[a.currentScreen] = newScreen
		created = true
	}

	// Прокидываем последнюю известную геометрию окна в новый экран,
	// иначе у него останутся нулевые размеры
	if a.theme.Width() > 0 && a.theme.Height() > 0 {
		if updated, cmd := newScreen.Update(tea.WindowSizeMsg{Width: a.theme.Width(), Height: a.theme.Height()}); updated != nil {
			newScreen = updated
			a.screens[a.currentScreen] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if created {
		if init := newScreen.Init(); init != nil {
			cmds = append(cmds, init)
		}
	}

	// Входим в новый экран
	if enter := newScreen.OnEnter(); enter != nil {
		cmds = append(cmds, enter)
	}

	return tea.Batch(cmds...)
}

// handleError обрабатывает ошибки
func (a *App) handleError(msg ErrorMsg) (tea.Model, tea.Cmd) {
	a.lastError = msg.Error
	if msg.Error == nil {
		return a, nil
	}
	a.log.Errorf("%v", msg.Error)
	return a, a.showMessage(a.errorText(msg.Error))
}
