package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/fs"
	"notepad-tui/internal/workspace"
)

type fileChangedMsg struct {
	event fs.FileChangeEvent
}

type watchErrorMsg struct {
	err error
}

// waitForFileChange ждет следующее событие наблюдателя
func (a *App) waitForFileChange() tea.Cmd {
	w := a.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			return fileChangedMsg{event: ev}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrorMsg{err: err}
		}
	}
}

// onDocumentEvent держит наблюдатель в согласии с набором открытых файлов
func (a *App) onDocumentEvent(e Event) {
	ev, ok := e.(DocumentEvent)
	if !ok {
		return
	}
	a.log.Debugf("document %s: %s %s", ev.Kind, ev.Name, ev.Path)

	switch ev.Kind {
	case workspace.EventOpened:
		a.watch(ev.Path)
	case workspace.EventSaved, workspace.EventRenamed:
		if ev.OldPath != ev.Path {
			a.unwatch(ev.OldPath)
			a.watch(ev.Path)
		}
	case workspace.EventClosed:
		a.unwatch(ev.Path)
	}
}

func (a *App) watch(path string) {
	if a.watcher == nil || path == "" || a.watcher.Watched(path) {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.log.Warnf("watch %s: %v", path, err)
	}
}

// unwatch снимает наблюдение, если файл не открыт в другой вкладке
func (a *App) unwatch(path string) {
	if a.watcher == nil || path == "" || a.manager.IndexOf(path) >= 0 || !a.watcher.Watched(path) {
		return
	}
	if err := a.watcher.Unwatch(path); err != nil {
		a.log.Debugf("unwatch %s: %v", path, err)
	}
}

// onFileChanged сообщает об изменении открытого файла на диске
func (a *App) onFileChanged(e Event) {
	ev, ok := e.(FileChangedEvent)
	if !ok {
		return
	}
	if a.manager.IndexOf(ev.Path) < 0 {
		return
	}
	a.log.Infof("file %s on disk: %s", ev.Operation, ev.Path)
	op := a.catalog.T("op." + ev.Operation.String())
	a.workspace.SetNotice(a.catalog.F("msg.changed_on_disk", filepath.Base(ev.Path), op), false)
}
