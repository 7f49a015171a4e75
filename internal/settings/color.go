package settings

import (
	"fmt"
	"regexp"
	"strings"
)

// ColorTarget элемент редактора, цвет которого настраивается
type ColorTarget int

const (
	TextColor ColorTarget = iota
	BackgroundColor
	CurrentLineColor
	GutterTextColor
	GutterBackgroundColor

	colorTargetCount
)

var colorKeys = [colorTargetCount]string{
	TextColor:             "TEXT_COLOUR",
	BackgroundColor:       "BACKGROUND_COLOUR",
	CurrentLineColor:      "LINE_COLOUR",
	GutterTextColor:       "LINE_NUMBER_AREA_TEXT",
	GutterBackgroundColor: "LINE_NUMBER_AREA_BACKGROUND",
}

var defaultColors = [colorTargetCount]string{
	TextColor:             "#000000",
	BackgroundColor:       "#ffffff",
	CurrentLineColor:      "#e8e8ff",
	GutterTextColor:       "#000000",
	GutterBackgroundColor: "#c0c0c0",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// AllColorTargets все настраиваемые цвета в порядке отображения
func AllColorTargets() []ColorTarget {
	return []ColorTarget{TextColor, BackgroundColor, CurrentLineColor, GutterTextColor, GutterBackgroundColor}
}

// Key имя ключа в секции COLOUR
func (c ColorTarget) Key() string {
	if c < 0 || c >= colorTargetCount {
		return ""
	}
	return colorKeys[c]
}

func (c ColorTarget) String() string {
	switch c {
	case TextColor:
		return "text"
	case BackgroundColor:
		return "background"
	case CurrentLineColor:
		return "current line"
	case GutterTextColor:
		return "line numbers"
	case GutterBackgroundColor:
		return "line number background"
	default:
		return "unknown"
	}
}

// ParseColor проверяет цвет вида #rrggbb и приводит его к нижнему регистру
func ParseColor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !hexColor.MatchString(value) {
		return "", fmt.Errorf("invalid colour %q: want #rrggbb", value)
	}
	return strings.ToLower(value), nil
}
