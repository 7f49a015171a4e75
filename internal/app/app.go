package app

import (
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/config"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/fs"
	"notepad-tui/internal/i18n"
	"notepad-tui/internal/logging"
	"notepad-tui/internal/platform"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/textio"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/ui/screens"
	"notepad-tui/internal/ui/styles"
	"notepad-tui/internal/workspace"
)

// ScreenType определяет тип экрана
type ScreenType int

const (
	WorkspaceScreen ScreenType = iota
	OpenScreen
	CommandPaletteScreen
	OptionsScreen
	HelpScreen
)

// Options зависимости приложения
type Options struct {
	Config    *config.Config
	Settings  *settings.Settings
	Logger    *logging.Logger
	Clipboard editor.Clipboard
	Watcher   *fs.FileWatcher // nil отключает слежение за файлами
	Files     []string        // файлы из командной строки
}

// App представляет главное приложение
type App struct {
	config        *config.Config
	settings      *settings.Settings
	catalog       *i18n.Catalog
	theme         *styles.Theme
	log           *logging.Logger
	manager       *workspace.Manager
	watcher       *fs.FileWatcher
	folder        platform.FolderOpener
	currentScreen ScreenType
	screens       map[ScreenType]screens.Screen
	workspace     *screens.WorkspaceScreen
	router        *ScreenRouter
	eventBus      *EventBus
	commands      *CommandRegistry

	// Модальные окна
	choice  *components.ChoiceDialog
	confirm *components.ConfirmDialog
	input   *components.InputDialog
	message *components.MessageBox

	// Продолжения для ответов модальных окон
	onInput         func(string) tea.Cmd
	onInputCancel   func() tea.Cmd
	onConfirm       func() tea.Cmd
	onConfirmCancel func() tea.Cmd
	pending         []pendingMessage

	gate      *saveGate
	files     []string
	lastError error
	quitting  bool
	now       func() time.Time
}

// New создает новое приложение
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := opts.Settings
	if s == nil {
		s = settings.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	app := &App{
		config:   cfg,
		settings: s,
		catalog:  i18n.New(s.Language),
		theme:    styles.NewTheme(s.Style),
		log:      log,
		watcher:  opts.Watcher,
		screens:  make(map[ScreenType]screens.Screen),
		eventBus: NewEventBus(),
		commands: NewCommandRegistry(),
		files:    opts.Files,
		now:      time.Now,
	}

	app.manager = workspace.NewManager(workspace.Options{
		Reader:     textio.Reader{MaxSize: cfg.Performance.MaxFileSize},
		MaxHistory: cfg.Performance.MaxHistory,
		Editor:     app.editorConfig(),
		Style:      styles.EditorStyle(s),
		Clipboard:  opts.Clipboard,
		Recent:     s.Recent,
		ZoomBase:   s.FontSize,
	})
	app.manager.SetListener(func(ev workspace.Event) {
		app.eventBus.Publish(DocumentEvent{Event: ev})
	})
	app.eventBus.Subscribe(EventDocument, app.onDocumentEvent)
	app.eventBus.Subscribe(EventFileChanged, app.onFileChanged)

	// Инициализируем роутер
	app.router = NewScreenRouter(app)

	app.initDialogs()
	app.registerCommands()

	app.workspace = screens.NewWorkspaceScreen(app.theme, app.catalog, s, app.manager, app.displayKey)
	app.screens[WorkspaceScreen] = app.workspace
	app.currentScreen = WorkspaceScreen

	return app
}

// Init открывает файлы из командной строки и запускает слежение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.workspace.Init(), a.workspace.OnEnter(), a.openInitialFiles()}
	if a.watcher != nil {
		cmds = append(cmds, a.waitForFileChange())
	}
	return tea.Batch(cmds...)
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.update(msg)
	if a.currentScreen == WorkspaceScreen {
		a.workspace.Refresh()
	}
	return model, cmd
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleGlobalKeys(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case ScreenSwitchMsg:
		return a.handleScreenSwitch(msg)
	case ErrorMsg:
		return a.handleError(msg)
	case saveChoiceMsg:
		return a, a.handleSaveChoice(msg.choice)
	case inputResultMsg:
		return a, a.handleInputResult(msg.result)
	case confirmResultMsg:
		return a, a.handleConfirmResult(msg.ok)
	case messageClosedMsg:
		return a, a.handleMessageClosed()
	case fileChangedMsg:
		a.eventBus.Publish(FileChangedEvent{Path: msg.event.Path, Operation: msg.event.Operation})
		return a, a.waitForFileChange()
	case watchErrorMsg:
		a.log.Warnf("file watcher: %v", msg.err)
		return a, a.waitForFileChange()
	case folderResultMsg:
		if msg.err != nil {
			a.log.Warnf("open folder: %v", msg.err)
			return a, a.showMessage(a.catalog.F("msg.cannot_folder", msg.err))
		}
		return a, nil
	case editor.ClipboardErrorMsg:
		a.log.Warnf("clipboard: %v", msg.Err)
		a.workspace.SetNotice(a.catalog.F("msg.clipboard", msg.Err), true)
		return a, nil
	case components.FindRequestMsg:
		return a, a.handleFind(msg)
	case editor.ZoomMsg, components.FindClosedMsg:
		_, cmd := a.workspace.Update(msg)
		return a, cmd
	case screens.BackMsg:
		return a, a.router.GoBack()
	case screens.OpenFileMsg:
		cmd := a.activate(WorkspaceScreen)
		a.router.ClearHistory()
		return a, tea.Batch(cmd, a.openPath(msg.Path))
	case screens.SettingsChangedMsg:
		a.applySettings()
		return a, nil
	case screens.CloseTabMsg:
		return a, a.closeTab(msg.Index)
	case screens.CommandExecuteMsg:
		cmd := a.activate(WorkspaceScreen)
		a.router.ClearHistory()
		return a, tea.Batch(cmd, a.commands.Run(msg.ID, a))
	case screens.CommandPaletteClosedMsg:
		return a, a.router.GoBack()
	}

	// Передаем сообщение текущему экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if dialog := a.dialogView(); dialog != "" {
		return lipgloss.Place(
			max(a.theme.Width(), 1), max(a.theme.Height(), 1),
			lipgloss.Center, lipgloss.Center,
			dialog,
		)
	}

	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return "Loading..."
	}
	return currentScreen.View()
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.currentScreen]
}

// createScreen создает экран по типу
func (a *App) createScreen(screenType ScreenType) screens.Screen {
	switch screenType {
	case OpenScreen:
		return screens.NewOpenScreen(a.theme, a.catalog)
	case CommandPaletteScreen:
		return screens.NewCommandPaletteScreen(a.theme, a.catalog, a.paletteEntries)
	case OptionsScreen:
		return screens.NewOptionsScreen(a.theme, a.catalog, a.settings)
	case HelpScreen:
		return screens.NewHelpScreen(a.theme, a.catalog, a.helpEntries)
	default:
		return a.workspace
	}
}

// editorConfig настройки редактора из config.yaml и settings.ini
func (a *App) editorConfig() editor.Config {
	return editor.Config{
		TabSize:        a.config.Editor.TabSize,
		UseSpaces:      a.config.Editor.UseSpaces,
		Wrap:           a.settings.WrapText,
		ShowWhitespace: a.settings.ShowSpaceTab,
	}
}

// applySettings применяет настройки ко всем вкладкам и экранам
func (a *App) applySettings() {
	a.theme.SetScheme(a.settings.Style)
	a.catalog.SetLanguage(i18n.ParseLanguage(a.settings.Language))
	a.manager.SetStyle(styles.EditorStyle(a.settings))
	a.manager.SetEditorConfig(a.editorConfig())
	a.manager.SetZoomBase(a.settings.FontSize)
	a.workspace.Refresh()
	a.initDialogs()
}

// displayKey клавиша команды в виде для подсказок
func (a *App) displayKey(id string) string {
	cmd := a.commands.Get(id)
	if cmd == nil || cmd.Key == "" {
		return ""
	}
	return platform.DisplayKey(cmd.Key)
}

// paletteEntries команды для палитры, отсортированные по названию
func (a *App) paletteEntries() []screens.CommandEntry {
	all := a.commands.All()
	entries := make([]screens.CommandEntry, 0, len(all))
	for _, cmd := range all {
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.TitleFor(a),
			Key:     a.displayKey(cmd.ID),
			Enabled: cmd.Available(a),
		})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []screens.CommandEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Title) < strings.ToLower(entries[j].Title)
	})
}

// helpEntries привязанные к клавишам команды для справки
func (a *App) helpEntries() []screens.HelpEntry {
	var entries []screens.HelpEntry
	for _, cmd := range a.commands.All() {
		if cmd.Key == "" {
			continue
		}
		entries = append(entries, screens.HelpEntry{Title: cmd.TitleFor(a), Key: platform.DisplayKey(cmd.Key)})
	}
	return entries
}

// Manager менеджер вкладок
func (a *App) Manager() *workspace.Manager {
	return a.manager
}

// Settings пользовательские настройки
func (a *App) Settings() *settings.Settings {
	return a.settings
}

// CurrentScreen текущий экран
func (a *App) CurrentScreen() ScreenType {
	return a.currentScreen
}

// Quitting прошел ли выход проверку несохраненных изменений
func (a *App) Quitting() bool {
	return a.quitting
}

// Сообщения для приложения

// ScreenSwitchMsg сообщение о переключении экрана
type ScreenSwitchMsg struct {
	ScreenType ScreenType
}

// ErrorMsg сообщение об ошибке
type ErrorMsg struct {
	Error error
}
