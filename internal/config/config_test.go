package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notepad-tui", "config.yaml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Performance.MaxHistory != 100 || cfg.Editor.TabSize != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromFillsMissingKeybindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "editor:\n  tab_size: 2\n  use_spaces: true\nkeybindings:\n  file.save: ctrl+e\n  file.open: \"\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Key("file.save"); got != "ctrl+e" {
		t.Fatalf("override lost: got %q", got)
	}
	if got := cfg.Key("file.open"); got != "ctrl+o" {
		t.Fatalf("empty binding must fall back to default: got %q", got)
	}
	if got := cfg.Key("app.quit"); got != "ctrl+q" {
		t.Fatalf("missing binding must be filled: got %q", got)
	}
	if cfg.Editor.TabSize != 2 || !cfg.Editor.UseSpaces {
		t.Fatalf("editor section: %+v", cfg.Editor)
	}
	if cfg.Performance.MaxHistory != 100 {
		t.Fatalf("absent section must keep defaults: %+v", cfg.Performance)
	}
}

func TestLoadFromBrokenYAMLReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("editor: [\n"), 0644)
	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.Key("app.quit") != "ctrl+q" {
		t.Fatalf("defaults expected on error")
	}
}

func TestValidateNormalizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.TabSize = 99
	cfg.Performance.MaxHistory = 0
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
	if cfg.Editor.TabSize != 4 || cfg.Performance.MaxHistory != 100 || cfg.Logging.Level != "info" {
		t.Fatalf("not normalized: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("normalized config must validate: %v", err)
	}
}
