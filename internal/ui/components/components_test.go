package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	if strings.HasPrefix(s, "alt+") {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(strings.TrimPrefix(s, "alt+")), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmDialogResult(t *testing.T) {
	d := NewConfirmDialog("Reload", "Discard changes?")
	ch := d.Show()
	if !d.Visible() || !strings.Contains(d.View(), "Discard changes?") {
		t.Fatalf("dialog must be visible")
	}
	d.Update(key("y"))
	if got := <-ch; !got {
		t.Fatalf("y must confirm")
	}
	if d.Visible() || d.View() != "" {
		t.Fatalf("dialog must hide after answer")
	}
}

func TestChoiceDialogKeys(t *testing.T) {
	cases := []struct {
		keys []string
		want Choice
	}{
		{[]string{"enter"}, ChoiceSave},
		{[]string{"right", "enter"}, ChoiceDiscard},
		{[]string{"tab", "tab", "enter"}, ChoiceCancel},
		{[]string{"d"}, ChoiceDiscard},
		{[]string{"esc"}, ChoiceCancel},
	}
	for _, tc := range cases {
		d := NewChoiceDialog("Notepad")
		ch := d.Show("modified")
		for _, k := range tc.keys {
			d.Update(key(k))
		}
		if got := <-ch; got != tc.want {
			t.Fatalf("%v: got %v, want %v", tc.keys, got, tc.want)
		}
	}
}

func TestInputDialogValidates(t *testing.T) {
	d := NewInputDialog()
	ch := d.Show("Go To Line", "Line number:", "")
	d.Validate = func(s string) error {
		if s != "12" {
			return errBad
		}
		return nil
	}
	d.Update(key("1"))
	d.Update(key("enter"))
	if !d.Visible() || !strings.Contains(d.View(), errBad.Error()) {
		t.Fatalf("invalid value must keep the dialog open with an error")
	}
	d.Update(key("2"))
	d.Update(key("enter"))
	if got := <-ch; !got.OK || got.Value != "12" {
		t.Fatalf("got %+v", got)
	}
}

func TestInputDialogCancel(t *testing.T) {
	d := NewInputDialog()
	ch := d.Show("Rename", "New Name:", "a.txt")
	d.Update(key("esc"))
	if got := <-ch; got.OK {
		t.Fatalf("esc must cancel: %+v", got)
	}
}

func TestMessageBoxCloses(t *testing.T) {
	m := NewMessageBox()
	ch := m.Show("Notepad", "Cannot find text")
	m.Update(key("enter"))
	select {
	case <-ch:
	default:
		t.Fatalf("enter must close the message box")
	}
}

func TestFindDialogEmitsRequests(t *testing.T) {
	d := NewFindDialog()
	d.Open(true, "cat")
	cmd := d.Update(key("enter"))
	req, ok := cmd().(FindRequestMsg)
	if !ok || req.Action != FindNext || req.Query != "cat" || !req.Options.WrapAround {
		t.Fatalf("find next: %+v", req)
	}
	d.Update(key("tab"))
	d.Update(key("dog"))
	req = d.Update(key("alt+a"))().(FindRequestMsg)
	if req.Action != ReplaceAll || req.Replacement != "dog" {
		t.Fatalf("replace all: %+v", req)
	}
	d.Update(key("alt+c"))
	if !d.Request(FindNext).Options.CaseSensitive {
		t.Fatalf("alt+c must toggle case sensitivity")
	}
	if msg := d.Update(key("esc"))(); msg != (FindClosedMsg{}) {
		t.Fatalf("esc must close: %#v", msg)
	}
	if d.Visible() {
		t.Fatalf("panel still visible")
	}
}

func TestFindDialogIgnoresEmptyQuery(t *testing.T) {
	d := NewFindDialog()
	d.Open(false, "")
	if cmd := d.Update(key("enter")); cmd != nil {
		t.Fatalf("empty query must not search")
	}
	if cmd := d.Update(key("alt+r")); cmd != nil {
		t.Fatalf("replace is unavailable in find mode")
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errBad = testError("bad value")
