package app

import (
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/document"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/textio"
	"notepad-tui/internal/ui/screens"
)

// maxRecentCommands число команд «Открыть недавний»
const maxRecentCommands = settings.MaxRecentFiles

func titleOf(id string) func(*App) string {
	return func(a *App) string { return a.catalog.T(id) }
}

// editorFocused клавиши редактирования идут в редактор, а не в панель поиска
func editorFocused(a *App) bool {
	return !a.workspace.Find().Visible()
}

func hasPath(a *App) bool {
	return !a.manager.Active().Doc.Untitled()
}

// registerCommands заполняет реестр командами приложения
func (a *App) registerCommands() {
	ws := WorkspaceScreen
	scoped := &ws

	// add регистрирует команду рабочей области с клавишей из config.yaml
	add := func(id string, run func(*App) tea.Cmd) *Command {
		cmd := &Command{ID: id, Title: titleOf(id), Key: a.config.Key(id), Screen: scoped, Run: run}
		if err := a.commands.Register(cmd); err != nil {
			a.log.Warnf("%v", err)
		}
		return cmd
	}
	global := func(id string, run func(*App) tea.Cmd) {
		cmd := &Command{ID: id, Title: titleOf(id), Key: a.config.Key(id), Run: run}
		if err := a.commands.Register(cmd); err != nil {
			a.log.Warnf("%v", err)
		}
	}

	// Приложение
	global("app.quit", func(a *App) tea.Cmd { return a.requestQuit() })
	global("app.command_palette", func(a *App) tea.Cmd { return a.router.Toggle(CommandPaletteScreen) })
	global("app.options", func(a *App) tea.Cmd { return a.router.Toggle(OptionsScreen) })
	global("app.help", func(a *App) tea.Cmd { return a.router.Toggle(HelpScreen) })
	add("app.summary", func(a *App) tea.Cmd { return a.summary() })
	add("app.about", func(a *App) tea.Cmd {
		return a.showTitled(a.catalog.T("app.about"), a.catalog.T("msg.about"))
	})
	for _, lang := range []string{settings.LanguageEnglish, settings.LanguageRussian} {
		lang := lang
		cmd := add("app.language."+strings.ToLower(lang), func(a *App) tea.Cmd {
			a.settings.Language = lang
			a.applySettings()
			return nil
		})
		cmd.Title = func(a *App) string { return a.catalog.F("app.language", lang) }
	}

	// Файл
	add("file.new", func(a *App) tea.Cmd {
		a.manager.New()
		return nil
	})
	add("file.open", func(a *App) tea.Cmd {
		if doc := a.manager.Active().Doc; !doc.Untitled() {
			a.openScreen().SetDir(filepath.Dir(doc.Path))
		}
		return a.router.SwitchTo(OpenScreen)
	})
	add("file.open_path", func(a *App) tea.Cmd {
		return a.askInput(a.catalog.T("dialog.open_title"), a.catalog.T("dialog.path_label"), "", a.requireText, a.openPath, nil)
	})
	for n := 1; n <= maxRecentCommands; n++ {
		n := n
		cmd := add("file.open_recent."+strconv.Itoa(n), func(a *App) tea.Cmd { return a.openRecent(n) })
		cmd.Title = func(a *App) string {
			name := "-"
			if list := a.manager.Recent().List(); n <= len(list) {
				name = list[n-1]
			}
			return a.catalog.F("file.open_recent", name)
		}
		cmd.Enabled = func(a *App) bool { return a.manager.Recent().Len() >= n }
	}
	add("file.clear_recent", func(a *App) tea.Cmd {
		a.manager.Recent().Clear()
		return nil
	}).Enabled = func(a *App) bool { return a.manager.Recent().Len() > 0 }
	add("file.save", func(a *App) tea.Cmd { return a.saveActive() })
	add("file.save_as", func(a *App) tea.Cmd {
		return a.promptSaveAs(a.manager.ActiveIndex(), a.afterSave, nil)
	})
	add("file.close", func(a *App) tea.Cmd { return a.closeTab(a.manager.ActiveIndex()) })
	add("file.close_all", func(a *App) tea.Cmd { return a.closeAll() })
	add("file.reload", func(a *App) tea.Cmd { return a.reload(a.manager.Reload) }).Enabled = hasPath
	add("file.rename", func(a *App) tea.Cmd { return a.rename() })
	add("file.open_folder", func(a *App) tea.Cmd { return a.openFolder() }).Enabled = hasPath

	// Правка
	editing := []struct {
		id  string
		run func(*App) tea.Cmd
	}{
		{"edit.undo", func(a *App) tea.Cmd { a.manager.Active().Editor.Undo(); return nil }},
		{"edit.redo", func(a *App) tea.Cmd { a.manager.Active().Editor.Redo(); return nil }},
		{"edit.cut", func(a *App) tea.Cmd { return a.manager.Active().Editor.Cut() }},
		{"edit.copy", func(a *App) tea.Cmd { return a.manager.Active().Editor.Copy() }},
		{"edit.paste", func(a *App) tea.Cmd { a.manager.Active().Editor.Paste(); return nil }},
		{"edit.delete", func(a *App) tea.Cmd { a.manager.Active().Editor.Delete(); return nil }},
		{"edit.select_all", func(a *App) tea.Cmd { a.manager.Active().Editor.SelectAll(); return nil }},
	}
	for _, e := range editing {
		add(e.id, e.run).Enabled = editorFocused
	}
	a.commands.Get("edit.undo").Enabled = func(a *App) bool {
		return editorFocused(a) && a.manager.Active().Doc.CanUndo()
	}
	a.commands.Get("edit.redo").Enabled = func(a *App) bool {
		return editorFocused(a) && a.manager.Active().Doc.CanRedo()
	}

	add("edit.find", func(a *App) tea.Cmd {
		a.workspace.OpenFind(false)
		return nil
	})
	add("edit.replace", func(a *App) tea.Cmd {
		a.workspace.OpenFind(true)
		return nil
	})
	add("edit.find_next", func(a *App) tea.Cmd { return a.findNext() })
	add("edit.goto", func(a *App) tea.Cmd { return a.gotoLine() })
	add("edit.date_time", func(a *App) tea.Cmd { return a.insertDateTime() })

	transforms := []struct {
		id string
		fn func(*App) document.Transform
	}{
		{"edit.upper", fixed(document.Upper)},
		{"edit.lower", fixed(document.Lower)},
		{"edit.title", fixed(document.Title)},
		{"edit.trim_trailing", fixed(document.TrimTrailing)},
		{"edit.trim_leading", fixed(document.TrimLeading)},
		{"edit.tabs_to_spaces", func(a *App) document.Transform { return document.TabsToSpaces(a.config.Editor.TabSize) }},
		{"edit.remove_spaces", fixed(document.RemoveSpaces)},
		{"edit.join_lines", fixed(document.JoinLines)},
		{"edit.remove_empty", fixed(document.RemoveEmptyLines)},
		{"edit.remove_dups", fixed(document.RemoveDuplicateLines)},
		{"edit.sort_asc", fixed(document.SortAscending)},
		{"edit.sort_desc", fixed(document.SortDescending)},
	}
	for _, t := range transforms {
		t := t
		add(t.id, func(a *App) tea.Cmd { return a.transform(t.fn(a)) })
	}

	// Кодировка и перевод строк
	for _, enc := range textio.AllEncodings() {
		enc := enc
		set := add("encoding.set."+enc.Key(), func(a *App) tea.Cmd {
			a.manager.SetEncoding(a.manager.ActiveIndex(), enc)
			return nil
		})
		set.Title = func(a *App) string { return a.catalog.F("encoding.set", enc.String()) }

		reopen := add("encoding.reopen."+enc.Key(), func(a *App) tea.Cmd { return a.reopenWithEncoding(enc) })
		reopen.Title = func(a *App) string { return a.catalog.F("encoding.reopen", enc.String()) }
		reopen.Enabled = hasPath
	}
	for _, le := range []textio.LineEnding{textio.CRLF, textio.LF} {
		le := le
		cmd := add("eol.set."+lineEndingKey(le), func(a *App) tea.Cmd {
			a.manager.SetLineEnding(a.manager.ActiveIndex(), le)
			return nil
		})
		cmd.Title = func(a *App) string { return a.catalog.F("eol.set", le.String()) }
	}

	// Вид
	add("view.zoom_in", func(a *App) tea.Cmd { a.manager.ZoomIn(); return nil })
	add("view.zoom_out", func(a *App) tea.Cmd { a.manager.ZoomOut(); return nil })
	add("view.zoom_restore", func(a *App) tea.Cmd { a.manager.ZoomRestore(); return nil })
	toggles := []struct {
		id    string
		value func(*settings.Settings) *bool
	}{
		{"view.wrap", func(s *settings.Settings) *bool { return &s.WrapText }},
		{"view.whitespace", func(s *settings.Settings) *bool { return &s.ShowSpaceTab }},
		{"view.statusbar", func(s *settings.Settings) *bool { return &s.ShowStatusBar }},
		{"view.tabbar", func(s *settings.Settings) *bool { return &s.ShowTabBar }},
		{"view.toolbar", func(s *settings.Settings) *bool { return &s.ShowToolbar }},
		{"view.menu", func(s *settings.Settings) *bool { return &s.ShowMenu }},
	}
	for _, t := range toggles {
		t := t
		add(t.id, func(a *App) tea.Cmd {
			v := t.value(a.settings)
			*v = !*v
			a.applySettings()
			return nil
		})
	}
	add("view.next_tab", func(a *App) tea.Cmd { a.manager.Next(); return nil })
	add("view.prev_tab", func(a *App) tea.Cmd { a.manager.Prev(); return nil })
}

func fixed(fn document.Transform) func(*App) document.Transform {
	return func(*App) document.Transform { return fn }
}

func lineEndingKey(le textio.LineEnding) string {
	if le == textio.LF {
		return "lf"
	}
	return "crlf"
}

// openScreen экран открытия файла, созданный заранее для выбора каталога
func (a *App) openScreen() *screens.OpenScreen {
	if s, ok := a.screens[OpenScreen].(*screens.OpenScreen); ok {
		return s
	}
	s := screens.NewOpenScreen(a.theme, a.catalog)
	a.screens[OpenScreen] = s
	return s
}
