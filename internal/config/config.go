package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config конфигурация приложения
type Config struct {
	// Редактор
	Editor EditorConfig `yaml:"editor"`

	// Горячие клавиши: идентификатор команды → клавиша
	Keybindings map[string]string `yaml:"keybindings"`

	// Производительность
	Performance PerformanceConfig `yaml:"performance"`

	// Логирование
	Logging LoggingConfig `yaml:"logging"`
}

// EditorConfig настройки редактора
type EditorConfig struct {
	TabSize   int  `yaml:"tab_size"`
	UseSpaces bool `yaml:"use_spaces"`
}

// PerformanceConfig настройки производительности
type PerformanceConfig struct {
	MaxFileSize int64 `yaml:"max_file_size"` // Максимальный размер файла в байтах
	MaxHistory  int   `yaml:"max_history"`   // Глубина истории отмены на документ
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error
	FilePath string `yaml:"file_path"` // Путь к файлу логов
}

// DefaultKeybindings привязки клавиш по умолчанию
func DefaultKeybindings() map[string]string {
	return map[string]string{
		"file.new":            "ctrl+n",
		"file.open":           "ctrl+o",
		"file.save":           "ctrl+s",
		"file.save_as":        "f12",
		"file.close":          "ctrl+w",
		"file.close_all":      "alt+w",
		"file.reload":         "ctrl+r",
		"file.rename":         "f2",
		"app.quit":            "ctrl+q",
		"edit.undo":           "ctrl+z",
		"edit.redo":           "ctrl+y",
		"edit.find":           "ctrl+f",
		"edit.find_next":      "f3",
		"edit.replace":        "ctrl+h",
		"edit.goto":           "ctrl+g",
		"edit.date_time":      "f5",
		"edit.upper":          "alt+u",
		"edit.lower":          "alt+l",
		"edit.title":          "alt+t",
		"view.zoom_in":        "alt+=",
		"view.zoom_out":       "alt+-",
		"view.zoom_restore":   "alt+0",
		"view.wrap":           "alt+z",
		"view.whitespace":     "alt+x",
		"view.next_tab":       "ctrl+pgdown",
		"view.prev_tab":       "ctrl+pgup",
		"app.command_palette": "ctrl+p",
		"app.options":         "f9",
		"app.summary":         "alt+i",
		"app.help":            "f1",
	}
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:   4,
			UseSpaces: false,
		},

		Keybindings: DefaultKeybindings(),

		Performance: PerformanceConfig{
			MaxFileSize: 10 * 1024 * 1024, // 10 MB
			MaxHistory:  100,
		},

		Logging: LoggingConfig{
			Level:    "info",
			FilePath: "", // Будет определен автоматически
		},
	}
}

// Load загружает конфигурацию из стандартного места
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := DefaultConfig()
		cfg.Logging.FilePath = getDefaultLogPath()
		return cfg, err // Возвращаем конфиг по умолчанию
	}
	return LoadFrom(configPath)
}

// LoadFrom загружает конфигурацию из файла. При ошибке возвращается
// конфигурация по умолчанию вместе с ошибкой.
func LoadFrom(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Logging.FilePath = getDefaultLogPath()

	// Если файл не существует, создаем его с настройками по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.Save(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	loaded := DefaultConfig()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", configPath, err)
	}
	cfg = loaded

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = getDefaultLogPath()
	}

	// Заполняем отсутствующие привязки клавиш значениями по умолчанию
	cfg.applyKeybindingDefaults(DefaultKeybindings())

	_ = cfg.Validate()

	return cfg, nil
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if defaults == nil {
		return
	}
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		current, ok := c.Keybindings[key]
		if !ok || strings.TrimSpace(current) == "" {
			c.Keybindings[key] = value
		}
	}
}

// Key привязка для команды или пустая строка
func (c *Config) Key(commandID string) string {
	return strings.TrimSpace(c.Keybindings[commandID])
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Dir каталог конфигурации приложения
func Dir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "notepad-tui"), nil
}

// getConfigPath возвращает путь к конфигурационному файлу
func getConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// getDefaultLogPath возвращает путь к файлу логов по умолчанию
func getDefaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, "notepad-tui", "app.log")
}

// Validate проверяет корректность конфигурации и подставляет значения по умолчанию
func (c *Config) Validate() error {
	var problems []string

	if c.Editor.TabSize < 1 || c.Editor.TabSize > 16 {
		problems = append(problems, fmt.Sprintf("editor.tab_size %d out of range", c.Editor.TabSize))
		c.Editor.TabSize = 4
	}

	if c.Performance.MaxFileSize < 1024 {
		problems = append(problems, "performance.max_file_size too small")
		c.Performance.MaxFileSize = 10 * 1024 * 1024
	}

	if c.Performance.MaxHistory < 1 {
		problems = append(problems, "performance.max_history must be positive")
		c.Performance.MaxHistory = 100
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		problems = append(problems, fmt.Sprintf("unknown logging.level %q", c.Logging.Level))
		c.Logging.Level = "info"
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
