package app

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/platform"
)

// Command действие приложения: палитра, справка и горячая клавиша
// ведут к одному и тому же Run.
type Command struct {
	ID      string
	Title   func(*App) string // локализованное название, вычисляется при показе
	Key     string
	Screen  *ScreenType // nil — команда доступна на всех экранах
	Enabled func(*App) bool
	Run     func(*App) tea.Cmd
}

// Available можно ли выполнить команду сейчас
func (c *Command) Available(a *App) bool {
	return c.Run != nil && (c.Enabled == nil || c.Enabled(a))
}

// TitleFor название команды на текущем языке
func (c *Command) TitleFor(a *App) string {
	if c.Title == nil {
		return c.ID
	}
	return c.Title(a)
}

func (c *Command) scopedTo(screen ScreenType) bool {
	return c.Screen != nil && *c.Screen == screen
}

// CommandRegistry команды по идентификатору и по клавише
type CommandRegistry struct {
	byID  map[string]*Command
	byKey map[string][]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byID:  make(map[string]*Command),
		byKey: make(map[string][]*Command),
	}
}

func keyOf(key string) string {
	if canonical := platform.CanonicalKeyForLookup(key); canonical != "" {
		return canonical
	}
	return key
}

// Register добавляет команду; повторный идентификатор — ошибка
func (r *CommandRegistry) Register(cmd *Command) error {
	if cmd == nil || cmd.ID == "" {
		return fmt.Errorf("register: command without id")
	}
	if _, ok := r.byID[cmd.ID]; ok {
		return fmt.Errorf("register %s: already registered", cmd.ID)
	}
	r.byID[cmd.ID] = cmd
	if cmd.Key != "" {
		k := keyOf(cmd.Key)
		r.byKey[k] = append(r.byKey[k], cmd)
	}
	return nil
}

// Resolve ищет доступную команду для клавиши на экране. Команды экрана
// важнее глобальных; выключенная команда пропускается, чтобы клавиша
// дошла до следующего кандидата или до самого экрана.
func (r *CommandRegistry) Resolve(key string, screen ScreenType, a *App) *Command {
	cmds := r.byKey[keyOf(key)]
	for _, c := range cmds {
		if c.scopedTo(screen) && c.Available(a) {
			return c
		}
	}
	for _, c := range cmds {
		if c.Screen == nil && c.Available(a) {
			return c
		}
	}
	return nil
}

// Get команда по идентификатору
func (r *CommandRegistry) Get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

// All все команды по возрастанию идентификатора
func (r *CommandRegistry) All() []*Command {
	list := make([]*Command, 0, len(r.byID))
	for _, cmd := range r.byID {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Run выполняет команду, если она доступна
func (r *CommandRegistry) Run(id string, a *App) tea.Cmd {
	cmd := r.Get(id)
	if cmd == nil || !cmd.Available(a) {
		return nil
	}
	return cmd.Run(a)
}
