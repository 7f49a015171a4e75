package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Имена секций файла настроек
const (
	SectionMain     = "MAIN"
	SectionColour   = "COLOUR"
	SectionFont     = "FONT"
	SectionGeometry = "GEOMETRY"
	SectionRecent   = "RECENT_FILE_LIST"

	recentKey = "FILES"
)

// Языки интерфейса
const (
	LanguageEnglish = "English"
	LanguageRussian = "Russian"
)

// Темы
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Насыщенность шрифта
const (
	WeightNormal = 500
	WeightBold   = 800
)

// EnvPath переменная окружения, переопределяющая путь к файлу настроек
const EnvPath = "NOTEPAD_TUI_SETTINGS"

var loadOptions = ini.LoadOptions{
	AllowShadows:        true,
	Loose:               true,
	IgnoreInlineComment: true,
}

// Settings пользовательские настройки Блокнота
type Settings struct {
	// MAIN
	Style          string
	Language       string
	ShowMenu       bool
	ShowStatusBar  bool
	ShowTabBar     bool
	VerticalTabBar bool
	TabCloseButton bool
	ShowToolbar    bool
	WrapText       bool
	ShowSpaceTab   bool

	// COLOUR
	colors [colorTargetCount]string

	// FONT
	FontFamily string
	FontSize   int
	FontWeight int
	FontItalic bool

	// GEOMETRY
	Width     int
	Height    int
	Maximized bool

	Recent *RecentFiles

	path string
	file *ini.File // сохраняет ключи, которые приложение не использует
}

// Default настройки по умолчанию
func Default() *Settings {
	return &Settings{
		Style:          ThemeLight,
		Language:       LanguageEnglish,
		ShowMenu:       true,
		ShowStatusBar:  true,
		ShowTabBar:     true,
		VerticalTabBar: false,
		TabCloseButton: true,
		ShowToolbar:    true,
		colors:         defaultColors,
		FontFamily:     "Segoe UI",
		FontSize:       12,
		FontWeight:     WeightNormal,
		Width:          730,
		Height:         500,
		Recent:         NewRecentFiles(MaxRecentFiles),
		file:           ini.Empty(loadOptions),
	}
}

// DefaultPath путь к settings.ini с учетом XDG_CONFIG_HOME и NOTEPAD_TUI_SETTINGS
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "notepad-tui", "settings.ini"), nil
}

// Load читает настройки из файла. Отсутствующий файл дает настройки по умолчанию.
func Load(path string) (*Settings, error) {
	s := Default()
	s.path = path

	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return s, fmt.Errorf("load settings %s: %w", path, err)
	}
	s.file = f
	s.read()
	return s, nil
}

// Path файл, из которого загружены настройки
func (s *Settings) Path() string {
	return s.path
}

func (s *Settings) read() {
	main := s.file.Section(SectionMain)
	s.Style = main.Key("CURRENT_STYLE").MustString(s.Style)
	s.Language = normalizeLanguage(main.Key("LANGUAGE").MustString(s.Language))
	s.ShowMenu = main.Key("SHOW_MENU").MustBool(s.ShowMenu)
	s.ShowStatusBar = main.Key("SHOW_STATUSBAR").MustBool(s.ShowStatusBar)
	s.ShowTabBar = main.Key("SHOW_TABBAR").MustBool(s.ShowTabBar)
	s.VerticalTabBar = main.Key("VERTICAL_TABBAR").MustBool(s.VerticalTabBar)
	s.TabCloseButton = main.Key("TAB_CLOSE_BTN").MustBool(s.TabCloseButton)
	s.ShowToolbar = main.Key("SHOW_TOOLBAR").MustBool(s.ShowToolbar)
	s.WrapText = main.Key("WRAP_TEXT").MustBool(s.WrapText)
	s.ShowSpaceTab = main.Key("SHOW_SPACE_TAB").MustBool(s.ShowSpaceTab)

	colour := s.file.Section(SectionColour)
	for _, target := range AllColorTargets() {
		if c, err := ParseColor(colour.Key(target.Key()).MustString(s.colors[target])); err == nil {
			s.colors[target] = c
		}
	}

	font := s.file.Section(SectionFont)
	s.FontFamily = font.Key("FONT_FAMILY").MustString(s.FontFamily)
	if size := font.Key("FONT_SIZE").MustInt(s.FontSize); size > 0 {
		s.FontSize = size
	}
	s.FontWeight = font.Key("FONT_WEIGHT").MustInt(s.FontWeight)
	s.FontItalic = font.Key("FONT_ITALIC").MustBool(s.FontItalic)

	geometry := s.file.Section(SectionGeometry)
	s.Width = geometry.Key("APP_WIDTH").MustInt(s.Width)
	s.Height = geometry.Key("APP_HEIGHT").MustInt(s.Height)
	s.Maximized = geometry.Key("APP_MAXIMIZED").MustBool(s.Maximized)

	if sec, err := s.file.GetSection(SectionRecent); err == nil && sec.HasKey(recentKey) {
		s.Recent.set(sec.Key(recentKey).ValueWithShadows())
	}
}

func (s *Settings) write() error {
	main := s.file.Section(SectionMain)
	main.Key("CURRENT_STYLE").SetValue(s.Style)
	main.Key("LANGUAGE").SetValue(s.Language)
	setBool(main, "SHOW_MENU", s.ShowMenu)
	setBool(main, "SHOW_STATUSBAR", s.ShowStatusBar)
	setBool(main, "SHOW_TABBAR", s.ShowTabBar)
	setBool(main, "VERTICAL_TABBAR", s.VerticalTabBar)
	setBool(main, "TAB_CLOSE_BTN", s.TabCloseButton)
	setBool(main, "SHOW_TOOLBAR", s.ShowToolbar)
	setBool(main, "WRAP_TEXT", s.WrapText)
	setBool(main, "SHOW_SPACE_TAB", s.ShowSpaceTab)

	colour := s.file.Section(SectionColour)
	for _, target := range AllColorTargets() {
		colour.Key(target.Key()).SetValue(s.colors[target])
	}

	font := s.file.Section(SectionFont)
	font.Key("FONT_FAMILY").SetValue(s.FontFamily)
	font.Key("FONT_SIZE").SetValue(strconv.Itoa(s.FontSize))
	font.Key("FONT_WEIGHT").SetValue(strconv.Itoa(s.FontWeight))
	setBool(font, "FONT_ITALIC", s.FontItalic)

	geometry := s.file.Section(SectionGeometry)
	geometry.Key("APP_WIDTH").SetValue(strconv.Itoa(s.Width))
	geometry.Key("APP_HEIGHT").SetValue(strconv.Itoa(s.Height))
	setBool(geometry, "APP_MAXIMIZED", s.Maximized)

	s.file.DeleteSection(SectionRecent)
	if s.Recent.Len() == 0 {
		return nil
	}
	recent := s.file.Section(SectionRecent)
	for _, path := range s.Recent.List() {
		if _, err := recent.NewKey(recentKey, path); err != nil {
			return err
		}
	}
	return nil
}

func setBool(sec *ini.Section, key string, value bool) {
	sec.Key(key).SetValue(strconv.FormatBool(value))
}

// Save записывает настройки в файл, из которого они были загружены
func (s *Settings) Save() error {
	if s.path == "" {
		return fmt.Errorf("save settings: no path")
	}
	return s.SaveTo(s.path)
}

// SaveTo записывает настройки в указанный файл
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := s.write(); err != nil {
		return fmt.Errorf("save settings %s: %w", path, err)
	}
	if err := s.file.SaveTo(path); err != nil {
		return fmt.Errorf("save settings %s: %w", path, err)
	}
	s.path = path
	return nil
}

// Dark выбрана ли темная тема
func (s *Settings) Dark() bool {
	return s.Style == ThemeDark
}

// Color цвет элемента в виде #rrggbb
func (s *Settings) Color(target ColorTarget) string {
	if target < 0 || target >= colorTargetCount {
		return ""
	}
	return s.colors[target]
}

// SetColor меняет цвет элемента
func (s *Settings) SetColor(target ColorTarget, value string) error {
	if target < 0 || target >= colorTargetCount {
		return fmt.Errorf("unknown colour target %d", int(target))
	}
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	s.colors[target] = c
	return nil
}

// ResetColors возвращает цвета по умолчанию
func (s *Settings) ResetColors() {
	s.colors = defaultColors
}

// Bold выбран ли жирный шрифт
func (s *Settings) Bold() bool {
	return s.FontWeight >= WeightBold
}

// SetBold переключает насыщенность шрифта
func (s *Settings) SetBold(bold bool) {
	if bold {
		s.FontWeight = WeightBold
		return
	}
	s.FontWeight = WeightNormal
}

func normalizeLanguage(lang string) string {
	if strings.EqualFold(lang, LanguageRussian) {
		return LanguageRussian
	}
	return LanguageEnglish
}
