package app

import (
	"sync"

	"notepad-tui/internal/fs"
	"notepad-tui/internal/workspace"
)

// Event представляет событие в системе
type Event interface {
	Type() string
}

// EventHandler обработчик события
type EventHandler func(Event)

// Типы событий
const (
	EventDocument    = "document"
	EventFileChanged = "file.changed"
)

// EventBus шина событий для связи между компонентами.
// Обработчики вызываются синхронно в цикле Update, поэтому могут трогать состояние приложения.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

// NewEventBus создает новую шину событий
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe подписывается на событие
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// Publish публикует событие и вызывает обработчики по порядку подписки
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.handlers[event.Type()]...)
	eb.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// DocumentEvent вкладка открыта, сохранена, закрыта, перезагружена или переименована
type DocumentEvent struct {
	workspace.Event
}

func (DocumentEvent) Type() string { return EventDocument }

// FileChangedEvent файл открытой вкладки изменился на диске
type FileChangedEvent struct {
	Path      string
	Operation fs.FileOperation
}

func (FileChangedEvent) Type() string { return EventFileChanged }
