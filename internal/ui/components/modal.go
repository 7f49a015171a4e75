package components

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// modal общий механизм показа окна и передачи результата через канал
type modal[T any] struct {
	visible bool
	result  chan T
	mu      sync.Mutex
}

// show делает окно видимым и возвращает канал результата.
// Повторный вызов для видимого окна возвращает тот же канал.
func (m *modal[T]) show() <-chan T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.visible && m.result != nil {
		return m.result
	}
	m.result = make(chan T, 1)
	m.visible = true
	return m.result
}

// Visible открыто ли окно
func (m *modal[T]) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *modal[T]) respond(value T) {
	m.mu.Lock()
	if !m.visible && m.result == nil {
		m.mu.Unlock()
		return
	}
	ch := m.result
	m.visible = false
	m.result = nil
	m.mu.Unlock()

	if ch != nil {
		select {
		case ch <- value:
		default:
		}
	}
}

// Await превращает канал результата окна в команду Bubble Tea
func Await[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return wrap(<-ch)
	}
}
