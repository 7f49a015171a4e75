package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Level уровень важности записи
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLevel разбирает уровень из конфигурации; неизвестное значение дает info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger пишет записи не ниже заданного уровня
type Logger struct {
	level Level
	out   *log.Logger
}

// New создает логгер поверх произвольного writer
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Discard логгер, который ничего не пишет
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// Setup направляет стандартный log в файл через bubbletea и возвращает логгер.
// Файл нужно закрыть после завершения программы.
func Setup(path string, level string) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Discard(), nil, err
	}
	f, err := tea.LogToFile(path, "notepad-tui")
	if err != nil {
		return Discard(), nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &Logger{level: ParseLevel(level), out: log.Default()}, f, nil
}

// Level текущий уровень
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
