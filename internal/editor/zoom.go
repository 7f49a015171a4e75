package editor

const (
	// ZoomStep шаг изменения масштаба
	ZoomStep = 1
	// MinZoom минимальный уровень масштаба
	MinZoom = -6
	// DefaultFontSize базовый размер шрифта, если в настройках он не задан
	DefaultFontSize = 12
)

// ZoomIn увеличивает уровень масштаба
func ZoomIn(level int) int {
	return level + ZoomStep
}

// ZoomOut уменьшает уровень масштаба, не опускаясь ниже минимума.
// Размер шрифта base+level всегда остается положительным.
func ZoomOut(level, base int) int {
	floor := max(MinZoom, 1-normalizeBase(base))
	if level-ZoomStep < floor {
		return level
	}
	return level - ZoomStep
}

// ZoomPercent масштаб в процентах относительно базового размера шрифта
func ZoomPercent(level, base int) int {
	base = normalizeBase(base)
	return 100 * (base + level) / base
}

func normalizeBase(base int) int {
	if base <= 0 {
		return DefaultFontSize
	}
	return base
}
