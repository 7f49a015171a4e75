package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/document"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/platform"
	"notepad-tui/internal/settings"
	"notepad-tui/internal/textio"
	"notepad-tui/internal/ui/components"
)

func newTestApp(t *testing.T, files ...string) *App {
	t.Helper()
	a := New(Options{
		Settings:  settings.Default(),
		Clipboard: &editor.MemoryClipboard{},
		Files:     files,
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a
}

func modify(t *testing.T, a *App, text string) {
	t.Helper()
	doc := a.manager.Active().Doc
	if !doc.Edit(func(b *document.Buffer) bool {
		b.SetText(text)
		return true
	}) {
		t.Fatalf("edit did not change the document")
	}
}

func TestRegistryPrefersScreenScopedCommand(t *testing.T) {
	r := NewCommandRegistry()
	ws := WorkspaceScreen
	noop := func(*App) tea.Cmd { return nil }
	if err := r.Register(&Command{ID: "global", Key: "ctrl+k", Run: noop}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(&Command{ID: "scoped", Key: "Control+K", Screen: &ws, Run: noop}); err != nil {
		t.Fatal(err)
	}

	if got := r.Resolve("ctrl+k", WorkspaceScreen, nil); got == nil || got.ID != "scoped" {
		t.Fatalf("workspace resolve = %v, want scoped", got)
	}
	if got := r.Resolve("ctrl+k", HelpScreen, nil); got == nil || got.ID != "global" {
		t.Fatalf("help resolve = %v, want global", got)
	}
	if got := r.Resolve("ctrl+j", WorkspaceScreen, nil); got != nil {
		t.Fatalf("unbound key resolved to %s", got.ID)
	}
	if err := r.Register(&Command{ID: "global", Key: "ctrl+g", Run: noop}); err == nil {
		t.Fatalf("duplicate id registered")
	}
}

func TestRegistrySkipsDisabledCommands(t *testing.T) {
	r := NewCommandRegistry()
	ws := WorkspaceScreen
	enabled := true
	noop := func(*App) tea.Cmd { return nil }
	r.Register(&Command{ID: "global", Key: "ctrl+k", Run: noop, Enabled: func(*App) bool { return enabled }})
	r.Register(&Command{ID: "scoped", Key: "ctrl+k", Screen: &ws, Run: noop, Enabled: func(*App) bool { return false }})

	if got := r.Resolve("ctrl+k", WorkspaceScreen, nil); got == nil || got.ID != "global" {
		t.Fatalf("disabled scoped command must yield to global, got %v", got)
	}
	enabled = false
	if got := r.Resolve("ctrl+k", WorkspaceScreen, nil); got != nil {
		t.Fatalf("all candidates disabled, got %s", got.ID)
	}
	if cmd := r.Run("global", nil); cmd != nil {
		t.Fatalf("disabled command ran")
	}
}

func TestEventBusCallsHandlersInOrder(t *testing.T) {
	bus := NewEventBus()
	var got []string
	bus.Subscribe(EventFileChanged, func(Event) { got = append(got, "first") })
	bus.Subscribe(EventFileChanged, func(Event) { got = append(got, "second") })
	bus.Subscribe(EventDocument, func(Event) { got = append(got, "other") })

	bus.Publish(FileChangedEvent{Path: "/tmp/a.txt"})
	if strings.Join(got, ",") != "first,second" {
		t.Fatalf("got %v, want [first second]", got)
	}
}

func TestWindowTitleMarksModified(t *testing.T) {
	a := newTestApp(t)
	if got := a.workspace.WindowTitle(); got != "Untitled1.txt - Notepad" {
		t.Fatalf("got %q, want %q", got, "Untitled1.txt - Notepad")
	}
	modify(t, a, "hello")
	if got := a.workspace.WindowTitle(); got != "Untitled1.txt* - Notepad" {
		t.Fatalf("got %q, want %q", got, "Untitled1.txt* - Notepad")
	}
	if status := a.workspace.StatusText(); !strings.Contains(status, "Ln: 1") || !strings.Contains(status, "UTF-8") {
		t.Fatalf("unexpected status %q", status)
	}
	modify(t, a, "ab\ncd")
	if status := a.workspace.StatusText(); !strings.Contains(status, "Length: 6") {
		t.Fatalf("length with CRLF: status %q", status)
	}
}

func TestQuitWithoutChangesQuitsImmediately(t *testing.T) {
	a := newTestApp(t)
	cmd := a.requestQuit()
	if !a.Quitting() {
		t.Fatalf("expected quitting")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// answer нажимает клавишу в открытом окне и доставляет его ответ приложению
func answer(t *testing.T, a *App, prompt tea.Cmd, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	if prompt == nil {
		t.Fatalf("no dialog is waiting for an answer")
	}
	for _, k := range keys {
		a.Update(k)
	}
	_, cmd := a.Update(prompt())
	return cmd
}

func TestQuitGateDiscardQuits(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "draft")

	prompt := a.requestQuit()
	if a.Quitting() {
		t.Fatalf("quit must wait for the save prompt")
	}
	if !a.choice.Visible() {
		t.Fatalf("expected save prompt")
	}

	cmd := answer(t, a, prompt, runeKey("d"))
	if !a.Quitting() {
		t.Fatalf("expected quitting after discard")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestQuitGateCancelKeepsRunning(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "draft")

	answer(t, a, a.requestQuit(), tea.KeyMsg{Type: tea.KeyEsc})
	if a.Quitting() {
		t.Fatalf("cancel must keep the app running")
	}
	if a.gate != nil {
		t.Fatalf("gate must be cleared after cancel")
	}
	if !a.manager.Active().Doc.Modified() {
		t.Fatalf("document must stay modified")
	}
}

func TestQuitGateAsksForEveryModifiedTab(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "first")
	a.manager.New()
	a.manager.New()
	modify(t, a, "third")

	next := answer(t, a, a.requestQuit(), runeKey("d"))
	if a.Quitting() {
		t.Fatalf("second modified tab must be asked about")
	}
	if got := a.manager.Active().Doc.Name; got != "Untitled3.txt" {
		t.Fatalf("prompt for %q, want Untitled3.txt", got)
	}
	answer(t, a, next, runeKey("d"))
	if !a.Quitting() {
		t.Fatalf("expected quitting after both prompts")
	}
}

func TestUndoAfterSaveAsksBeforeQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, path)
	a.openInitialFiles()
	modify(t, a, "hello world")
	if err := a.save(a.manager.ActiveIndex()); err != nil {
		t.Fatal(err)
	}
	a.manager.Active().Editor.Undo()

	prompt := a.requestQuit()
	if a.Quitting() || prompt == nil || !a.choice.Visible() {
		t.Fatalf("undo past the save point must ask before quitting")
	}
	answer(t, a, prompt, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Quitting() {
		t.Fatalf("cancel must keep running")
	}
}

func TestSaveChoiceWritesNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, path)
	a.openInitialFiles()
	modify(t, a, "changed")

	answer(t, a, a.requestQuit(), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.Quitting() {
		t.Fatalf("expected quitting after save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "changed" {
		t.Fatalf("got %q, want %q", data, "changed")
	}
}

func TestSaveChoiceOnUntitledAsksForPath(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "draft")

	saveAs := answer(t, a, a.requestQuit(), runeKey("s"))
	if !a.input.Visible() {
		t.Fatalf("expected save as prompt")
	}

	path := filepath.Join(t.TempDir(), "draft.txt")
	answer(t, a, saveAs, tea.KeyMsg{Type: tea.KeyCtrlU}, runeKey(path), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.Quitting() {
		t.Fatalf("expected quitting after save as")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "draft" {
		t.Fatalf("got %q, want %q", data, "draft")
	}
}

func TestSaveAsPromptCancelAbortsQuit(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "draft")

	saveAs := answer(t, a, a.requestQuit(), runeKey("s"))
	answer(t, a, saveAs, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Quitting() || a.gate != nil {
		t.Fatalf("cancelled save as must abort the quit")
	}
}

func TestSaveAsAsksBeforeOverwriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t)
	modify(t, a, "new")

	saveAs := a.commands.Run("file.save_as", a)
	confirm := answer(t, a, saveAs, tea.KeyMsg{Type: tea.KeyCtrlU}, runeKey(path), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.confirm.Visible() {
		t.Fatalf("expected overwrite confirmation")
	}
	answer(t, a, confirm, runeKey("y"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Fatalf("got %q, want %q", data, "new")
	}
	if a.manager.Active().Doc.Path != path {
		t.Fatalf("document not renamed to %s", path)
	}
}

func TestCloseTabGate(t *testing.T) {
	a := newTestApp(t)
	a.manager.New()
	if a.manager.Len() != 2 {
		t.Fatalf("got %d tabs, want 2", a.manager.Len())
	}

	// неизмененная вкладка закрывается без вопроса
	a.closeTab(a.manager.ActiveIndex())
	if a.manager.Len() != 1 || a.choice.Visible() {
		t.Fatalf("clean tab must close silently")
	}

	a.manager.New()
	modify(t, a, "draft")
	prompt := a.closeTab(a.manager.ActiveIndex())
	if !a.choice.Visible() {
		t.Fatalf("expected save prompt for modified tab")
	}
	answer(t, a, prompt, tea.KeyMsg{Type: tea.KeyEsc})
	if a.manager.Len() != 2 {
		t.Fatalf("cancel must keep the tab, got %d tabs", a.manager.Len())
	}

	answer(t, a, a.closeTab(a.manager.ActiveIndex()), runeKey("d"))
	if a.manager.Len() != 1 {
		t.Fatalf("discard must close the tab, got %d tabs", a.manager.Len())
	}
}

func TestCloseAllLeavesFreshUntitled(t *testing.T) {
	a := newTestApp(t)
	a.manager.New()
	a.manager.New()
	a.closeAll()
	if a.manager.Len() != 1 {
		t.Fatalf("got %d tabs, want 1", a.manager.Len())
	}
	if got := a.manager.Active().Doc.Name; got != "Untitled1.txt" {
		t.Fatalf("got %q, want Untitled1.txt", got)
	}
}

func TestOpenInitialFilesReplacesPristineUntitled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, path, filepath.Join(dir, "missing.txt"))

	cmd := a.openInitialFiles()
	if a.manager.Len() != 1 {
		t.Fatalf("got %d tabs, want 1", a.manager.Len())
	}
	if got := a.manager.Active().Doc.Path; got != path {
		t.Fatalf("got %q, want %q", got, path)
	}
	if cmd == nil || !a.message.Visible() {
		t.Fatalf("missing file must be reported")
	}
	if !strings.Contains(a.message.Text, "missing.txt") {
		t.Fatalf("message %q does not name the file", a.message.Text)
	}
}

func TestOpenRecentDropsUnreadableFile(t *testing.T) {
	a := newTestApp(t)
	missing := filepath.Join(t.TempDir(), "gone.txt")
	a.manager.Recent().Add(missing)

	a.commands.Run("file.open_recent.1", a)
	if a.manager.Recent().Len() != 0 {
		t.Fatalf("unreadable file must be removed from recent list")
	}
	if !a.message.Visible() {
		t.Fatalf("expected error message")
	}
	if cmd := a.commands.Get("file.open_recent.1"); cmd.Enabled(a) {
		t.Fatalf("command must be disabled with an empty recent list")
	}
}

func TestPaletteEntriesShowKeys(t *testing.T) {
	a := newTestApp(t)
	entries := a.paletteEntries()
	var save *string
	for i := range entries {
		if entries[i].ID == "file.save" {
			save = &entries[i].Key
		}
		if i > 0 && strings.ToLower(entries[i-1].Title) > strings.ToLower(entries[i].Title) {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Title, entries[i].Title)
		}
	}
	if save == nil {
		t.Fatalf("file.save missing from palette")
	}
	if want := platform.DisplayKey("ctrl+s"); *save != want {
		t.Fatalf("got %q, want %q", *save, want)
	}
}

func TestLanguageCommandSwitchesCatalog(t *testing.T) {
	a := newTestApp(t)
	a.commands.Run("app.language.russian", a)
	if a.settings.Language != settings.LanguageRussian {
		t.Fatalf("got %q, want %q", a.settings.Language, settings.LanguageRussian)
	}
	if got := a.catalog.T("app.name"); got != "Блокнот" {
		t.Fatalf("got %q, want %q", got, "Блокнот")
	}
	if got := a.choice.SaveText; got != "Сохранить" {
		t.Fatalf("dialogs not relabelled: %q", got)
	}
}

func TestViewToggleUpdatesSettings(t *testing.T) {
	a := newTestApp(t)
	before := a.settings.WrapText
	a.commands.Run("view.wrap", a)
	if a.settings.WrapText == before {
		t.Fatalf("wrap not toggled")
	}
	if a.manager.EditorConfig().Wrap != a.settings.WrapText {
		t.Fatalf("editor config not updated")
	}
}

func TestEditCommandsYieldToFindPanel(t *testing.T) {
	a := newTestApp(t)
	paste := a.commands.Get("edit.paste")
	if !paste.Enabled(a) {
		t.Fatalf("paste must be enabled while the editor has focus")
	}
	a.workspace.OpenFind(false)
	if paste.Enabled(a) {
		t.Fatalf("paste must go to the find panel while it is open")
	}
}

func TestMessagesQueueWhileBoxIsOpen(t *testing.T) {
	a := newTestApp(t)
	first := a.showMessage("first")
	if second := a.showMessage("second"); second != nil {
		t.Fatalf("second message must wait for the first")
	}
	if a.message.Text != "first" {
		t.Fatalf("got %q, want %q", a.message.Text, "first")
	}

	next := answer(t, a, first, tea.KeyMsg{Type: tea.KeyEnter})
	if next == nil || !a.message.Visible() || a.message.Text != "second" {
		t.Fatalf("queued message not shown, visible %v text %q", a.message.Visible(), a.message.Text)
	}
	if last := answer(t, a, next, tea.KeyMsg{Type: tea.KeyEnter}); last != nil || a.message.Visible() {
		t.Fatalf("queue must be empty after the second message")
	}
}

func TestFindNotFoundShowsMessage(t *testing.T) {
	a := newTestApp(t)
	modify(t, a, "alpha beta")
	a.handleFind(components.FindRequestMsg{Action: components.FindNext, Query: "gamma"})
	if !a.message.Visible() {
		t.Fatalf("expected not found message")
	}

	a.message.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a.handleFind(components.FindRequestMsg{Action: components.ReplaceAll, Query: "beta", Replacement: "gamma"})
	if got := a.manager.Active().Doc.Text(); got != "alpha gamma" {
		t.Fatalf("got %q, want %q", got, "alpha gamma")
	}
	if a.workspace.Notice() == "" {
		t.Fatalf("expected replace count notice")
	}
}

func TestErrorTextNamesOperationAndPath(t *testing.T) {
	a := newTestApp(t)
	cause := errors.New("permission denied")
	got := a.errorText(&textio.Error{Op: "write", Path: "/tmp/x.txt", Err: cause})
	want := a.catalog.F("msg.cannot_write", "/tmp/x.txt", cause)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := a.errorText(errors.New("boom")); got != "Error: boom" {
		t.Fatalf("got %q, want %q", got, "Error: boom")
	}
}

func TestRouterGoBackReturnsToPreviousScreen(t *testing.T) {
	a := newTestApp(t)
	a.Update(a.router.SwitchTo(HelpScreen)())
	if a.CurrentScreen() != HelpScreen {
		t.Fatalf("got %v, want help screen", a.CurrentScreen())
	}
	a.Update(a.router.GoBack()())
	if a.CurrentScreen() != WorkspaceScreen {
		t.Fatalf("got %v, want workspace", a.CurrentScreen())
	}
	if a.router.CanNavigateBack() {
		t.Fatalf("history must be empty")
	}
}
