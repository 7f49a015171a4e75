package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"notepad-tui/internal/settings"
)

func TestNewThemeSelectsScheme(t *testing.T) {
	if got := NewTheme(settings.ThemeDark).Colors(); got != DarkScheme {
		t.Fatalf("dark theme: got %+v", got)
	}
	for _, name := range []string{settings.ThemeLight, "windowsvista", ""} {
		if got := NewTheme(name).Colors(); got != LightScheme {
			t.Fatalf("%q must fall back to light scheme", name)
		}
	}
}

func TestEditorStyleUsesSettings(t *testing.T) {
	s := settings.Default()
	if err := s.SetColor(settings.TextColor, "#112233"); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	s.SetBold(true)
	s.FontItalic = true

	style := EditorStyle(s)
	if got := style.Text.GetForeground(); got != lipgloss.Color("#112233") {
		t.Fatalf("text foreground = %v", got)
	}
	if !style.Text.GetBold() || !style.Text.GetItalic() {
		t.Fatalf("font flags not applied")
	}
	if got := style.Gutter.Number.GetBackground(); got != lipgloss.Color(s.Color(settings.GutterBackgroundColor)) {
		t.Fatalf("gutter background = %v", got)
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	theme := NewTheme(settings.ThemeLight)
	theme.SetDimensions(30, 10)
	if w := lipgloss.Width(theme.StatusBar("Ln: 1")); w != 30 {
		t.Fatalf("status bar width = %d, want 30", w)
	}
}

func TestSetSchemeKeepsDimensions(t *testing.T) {
	theme := NewTheme(settings.ThemeLight)
	theme.SetDimensions(80, 24)
	theme.SetScheme(settings.ThemeDark)
	if theme.Colors() != DarkScheme || theme.Width() != 80 || theme.Height() != 24 {
		t.Fatalf("SetScheme must switch colours only: %+v %dx%d", theme.Colors(), theme.Width(), theme.Height())
	}
}
