package platform

import (
	"runtime"
	"sort"
	"strings"
	"unicode"
)

// IsMac reports whether we run on macOS.
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

var modifierOrder = map[string]int{
	"ctrl":  0,
	"super": 1,
	"alt":   2,
	"shift": 3,
}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"cmd":     "ctrl", // терминалы передают Cmd как Ctrl
	"command": "ctrl",
	"⌘":       "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"⌥":       "alt",
	"meta":    "super",
	"win":     "super",
	"windows": "super",
	"super":   "super",
	"shift":   "shift",
	"⇧":       "shift",
}

// CanonicalKeyForLookup normalizes a key description so that aliases
// ("control+S", "cmd+s", "ctrl+s") resolve to the same binding.
func CanonicalKeyForLookup(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	mods, main := splitKey(key)
	if len(mods) == 0 && main == "" {
		return ""
	}
	sort.SliceStable(mods, func(i, j int) bool {
		return modifierOrder[mods[i]] < modifierOrder[mods[j]]
	})
	if main == "" {
		return strings.Join(mods, "+")
	}
	return strings.Join(append(mods, main), "+")
}

// DisplayKey formats a binding for hints: "ctrl+pgdown" → "Ctrl+PgDown".
func DisplayKey(key string) string {
	canonical := CanonicalKeyForLookup(key)
	if canonical == "" {
		return ""
	}
	mods, main := splitKey(canonical)
	display := make([]string, 0, len(mods)+1)
	for _, mod := range mods {
		switch mod {
		case "ctrl":
			display = append(display, "Ctrl")
		case "alt":
			if IsMac() {
				display = append(display, "Option")
			} else {
				display = append(display, "Alt")
			}
		case "shift":
			display = append(display, "Shift")
		case "super":
			display = append(display, "Super")
		}
	}
	if main != "" {
		display = append(display, displayMain(main))
	}
	return strings.Join(display, "+")
}

func displayMain(main string) string {
	switch main {
	case "pgup":
		return "PgUp"
	case "pgdown":
		return "PgDown"
	case "esc":
		return "Esc"
	}
	runes := []rune(main)
	if len(runes) == 1 {
		return strings.ToUpper(main)
	}
	if runes[0] == 'f' && unicode.IsDigit(runes[1]) {
		return strings.ToUpper(main)
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// splitKey разбирает описание клавиши на уникальные модификаторы и основную клавишу
func splitKey(key string) (mods []string, main string) {
	seen := make(map[string]bool)
	var rest []string
	for _, part := range strings.Split(key, "+") {
		if part == "" {
			// "alt++" → основная клавиша "+"
			continue
		}
		if part == " " {
			rest = append(rest, "space")
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(part))
		if lower == "" {
			continue
		}
		if mod, ok := modifierAliases[lower]; ok {
			if !seen[mod] {
				seen[mod] = true
				mods = append(mods, mod)
			}
			continue
		}
		rest = append(rest, lower)
	}
	if strings.HasSuffix(key, "++") {
		rest = append(rest, "+")
	}
	return mods, strings.Join(rest, "+")
}
