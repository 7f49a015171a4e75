package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/document"
	"notepad-tui/internal/textio"
	"notepad-tui/internal/ui/components"
	"notepad-tui/internal/workspace"
)

// summaryTimeLayout формат времени изменения в окне сводки
const summaryTimeLayout = "02.01.2006 15:04:05"

type folderResultMsg struct {
	err error
}

// openPath открывает файл в новой вкладке
func (a *App) openPath(path string) tea.Cmd {
	_, err := a.manager.Open(expandPath(path))
	switch {
	case errors.Is(err, workspace.ErrAlreadyOpen):
		a.workspace.SetNotice(a.catalog.T("msg.already_open"), false)
		return nil
	case err != nil:
		return a.showError(err)
	}
	a.log.Infof("opened %s", path)
	return nil
}

// openRecent открывает n-й недавний файл; недоступный файл убирается из списка
func (a *App) openRecent(n int) tea.Cmd {
	list := a.manager.Recent().List()
	if n < 1 || n > len(list) {
		return nil
	}
	path := list[n-1]
	_, err := a.manager.Open(path)
	switch {
	case errors.Is(err, workspace.ErrAlreadyOpen):
		return nil
	case err != nil:
		a.manager.Recent().Remove(path)
		return a.showError(err)
	}
	return nil
}

// openInitialFiles открывает файлы из командной строки. Если хотя бы один
// открыт, нетронутая Untitled1.txt закрывается.
func (a *App) openInitialFiles() tea.Cmd {
	if len(a.files) == 0 {
		return nil
	}
	first := a.manager.Tab(0)
	var problems []string
	opened := 0
	for _, path := range a.files {
		_, err := a.manager.Open(expandPath(path))
		switch {
		case err == nil:
			opened++
		case errors.Is(err, workspace.ErrAlreadyOpen):
		default:
			a.log.Warnf("open %s: %v", path, err)
			problems = append(problems, a.errorText(err))
		}
	}
	a.files = nil

	if opened > 0 && first != nil && first.Doc.Untitled() && !first.Doc.Modified() && first.Doc.IsEmpty() {
		if i := a.tabIndex(first); i >= 0 {
			a.manager.ForceClose(i)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return a.showMessage(strings.Join(problems, "\n\n"))
}

// save сохраняет вкладку i по ее пути
func (a *App) save(i int) error {
	if tab := a.manager.Tab(i); tab != nil {
		a.suppress(tab.Doc.Path)
	}
	return a.manager.Save(i)
}

// saveAs сохраняет вкладку i под новым путем
func (a *App) saveAs(i int, path string) error {
	a.suppress(path)
	return a.manager.SaveAs(i, path)
}

func (a *App) afterSave(err error) tea.Cmd {
	if err != nil {
		return a.showError(err)
	}
	a.workspace.SetNotice(a.catalog.T("msg.file_saved"), false)
	return nil
}

// saveActive сохраняет текущую вкладку; безымянную через запрос пути
func (a *App) saveActive() tea.Cmd {
	i := a.manager.ActiveIndex()
	if a.manager.Active().Doc.Untitled() {
		return a.promptSaveAs(i, a.afterSave, nil)
	}
	return a.afterSave(a.save(i))
}

// promptSaveAs спрашивает путь и сохраняет вкладку. after получает результат
// записи, cancel вызывается при отказе от ввода или от перезаписи файла.
func (a *App) promptSaveAs(i int, after func(error) tea.Cmd, cancel func() tea.Cmd) tea.Cmd {
	tab := a.manager.Tab(i)
	if tab == nil {
		return nil
	}
	value := tab.Doc.Path
	if value == "" {
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		value = filepath.Join(dir, tab.Doc.Name)
	}

	write := func(path string) tea.Cmd {
		i := a.tabIndex(tab)
		if i < 0 {
			return nil
		}
		return after(a.saveAs(i, path))
	}
	return a.askInput(a.catalog.T("dialog.save_title"), a.catalog.T("dialog.path_label"), value, a.requireText, func(v string) tea.Cmd {
		path := expandPath(strings.TrimSpace(v))
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if path != tab.Doc.Path && fileExists(path) {
			return a.askConfirm(a.catalog.F("dialog.overwrite", path), func() tea.Cmd { return write(path) }, cancel)
		}
		return write(path)
	}, cancel)
}

// reload перечитывает текущий файл; несохраненные изменения требуют подтверждения
func (a *App) reload(read func(i int) (document.LineChanges, error)) tea.Cmd {
	tab := a.manager.Active()
	if tab.Doc.Untitled() {
		return a.showMessage(a.catalog.T("msg.no_path"))
	}
	run := func() tea.Cmd {
		i := a.tabIndex(tab)
		if i < 0 {
			return nil
		}
		changes, err := read(i)
		if err != nil {
			a.log.Warnf("reload %s: %v", tab.Doc.Path, err)
			return a.showMessage(a.catalog.F("msg.cannot_reload", tab.Doc.Path, cause(err)))
		}
		summary := a.catalog.T("msg.unchanged")
		if !changes.Empty() {
			summary = changes.String()
		}
		a.workspace.SetNotice(a.catalog.F("msg.reloaded", tab.Doc.DisplayName(), summary), false)
		return nil
	}
	if tab.Doc.Modified() {
		return a.askConfirm(a.catalog.F("dialog.reload_confirm", tab.Doc.DisplayName()), run, nil)
	}
	return run()
}

func (a *App) reopenWithEncoding(enc textio.Encoding) tea.Cmd {
	return a.reload(func(i int) (document.LineChanges, error) {
		return a.manager.ReopenWithEncoding(i, enc)
	})
}

// rename переименовывает текущую вкладку, а для именованного документа и файл
func (a *App) rename() tea.Cmd {
	tab := a.manager.Active()
	return a.askInput(a.catalog.T("dialog.rename_title"), a.catalog.T("dialog.rename_label"), tab.Doc.Name, a.requireText, func(v string) tea.Cmd {
		i := a.tabIndex(tab)
		if i < 0 {
			return nil
		}
		name := strings.TrimSpace(v)
		if old := tab.Doc.Path; old != "" {
			a.suppress(old)
			a.suppress(filepath.Join(filepath.Dir(old), name))
		}
		if err := a.manager.Rename(i, name); err != nil {
			return a.showError(err)
		}
		return nil
	}, nil)
}

// gotoLine спрашивает номер строки и переводит туда каретку
func (a *App) gotoLine() tea.Cmd {
	tab := a.manager.Active()
	current := strconv.Itoa(tab.Editor.Cursor().Line + 1)
	validate := func(v string) error {
		if _, err := parseLine(v); err != nil {
			return errors.New(a.catalog.T("find.invalid_line"))
		}
		return nil
	}
	return a.askInput(a.catalog.T("dialog.goto_title"), a.catalog.T("dialog.goto_label"), current, validate, func(v string) tea.Cmd {
		line, err := parseLine(v)
		if err != nil {
			return nil
		}
		tab.Editor.GotoLine(line)
		return nil
	}, nil)
}

func parseLine(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// handleFind выполняет поиск или замену в текущем документе
func (a *App) handleFind(msg components.FindRequestMsg) tea.Cmd {
	if msg.Query == "" {
		return nil
	}
	tab := a.manager.Active()
	doc := tab.Doc
	var found bool
	switch msg.Action {
	case components.ReplaceAll:
		n := doc.ReplaceAll(msg.Query, msg.Replacement, msg.Options)
		tab.Editor.Sync()
		if n == 0 {
			return a.showMessage(a.catalog.F("find.not_found", msg.Query))
		}
		a.workspace.SetNotice(a.catalog.F("find.replaced", n), false)
		return nil
	case components.ReplaceOne:
		found = doc.Replace(msg.Query, msg.Replacement, msg.Options)
	default:
		found = doc.Find(msg.Query, msg.Options)
	}
	tab.Editor.Sync()
	if !found {
		return a.showMessage(a.catalog.F("find.not_found", msg.Query))
	}
	return nil
}

// findNext повторяет последний поиск или открывает панель поиска
func (a *App) findNext() tea.Cmd {
	find := a.workspace.Find()
	if find.Query() == "" {
		a.workspace.OpenFind(false)
		return nil
	}
	return a.handleFind(find.Request(components.FindNext))
}

// summary окно со статистикой текущего документа
func (a *App) summary() tea.Cmd {
	s := a.manager.Active().Doc.Summarize()
	f := a.catalog.F
	lines := []string{
		f("summary.chars", s.Chars),
		f("summary.words", s.Words),
		f("summary.lines", s.Lines),
		f("summary.length", s.Length),
	}
	if s.SelRanges > 0 {
		lines = append(lines, f("summary.sel", s.SelChars, s.SelBytes, f("summary.ranges", s.SelRanges)))
	}
	if s.HasFileDetail {
		lines = append(lines,
			f("summary.path", s.FullPath),
			f("summary.modified", s.ModTime.Format(summaryTimeLayout)),
		)
	}
	return a.showTitled(a.catalog.T("app.summary"), strings.Join(lines, "\n"))
}

// openFolder открывает каталог текущего файла во внешнем файловом менеджере
func (a *App) openFolder() tea.Cmd {
	doc := a.manager.Active().Doc
	if doc.Untitled() {
		return a.showMessage(a.catalog.T("msg.no_path"))
	}
	path := doc.Path
	opener := a.folder
	return func() tea.Msg {
		return folderResultMsg{err: opener.OpenContaining(context.Background(), path)}
	}
}

// transform применяет преобразование к выделению или всему документу
func (a *App) transform(fn document.Transform) tea.Cmd {
	a.manager.Active().Editor.Apply(fn)
	return nil
}

func (a *App) insertDateTime() tea.Cmd {
	tab := a.manager.Active()
	if tab.Editor.ReadOnly() {
		return nil
	}
	tab.Doc.InsertDateTime(a.now())
	tab.Editor.Sync()
	return nil
}

// suppress заглушает событие наблюдателя о собственной записи файла
func (a *App) suppress(path string) {
	if a.watcher != nil && path != "" {
		a.watcher.Suppress(path)
	}
}

// requireText проверка непустого ввода
func (a *App) requireText(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New(a.catalog.T("dialog.required"))
	}
	return nil
}

// errorText сообщение об ошибке для окна
func (a *App) errorText(err error) string {
	switch {
	case errors.Is(err, workspace.ErrAlreadyOpen):
		return a.catalog.T("msg.already_open")
	case errors.Is(err, workspace.ErrNeedsPath):
		return a.catalog.T("msg.no_path")
	}
	var ioErr *textio.Error
	if errors.As(err, &ioErr) {
		switch ioErr.Op {
		case "read":
			return a.catalog.F("msg.cannot_read", ioErr.Path, ioErr.Err)
		case "write":
			return a.catalog.F("msg.cannot_write", ioErr.Path, ioErr.Err)
		case "rename":
			return a.catalog.F("msg.cannot_rename", ioErr.Path, ioErr.Err)
		}
	}
	return a.catalog.F("msg.error", err)
}

// showError записывает ошибку в лог и показывает ее в окне
func (a *App) showError(err error) tea.Cmd {
	a.log.Warnf("%v", err)
	return a.showMessage(a.errorText(err))
}

// cause ошибка ввода-вывода без обертки textio.Error
func cause(err error) error {
	var ioErr *textio.Error
	if errors.As(err, &ioErr) {
		return ioErr.Err
	}
	return err
}

// expandPath раскрывает ~ в начале пути
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
