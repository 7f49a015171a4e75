package workspace

// EventKind тип события менеджера вкладок
type EventKind int

const (
	EventOpened EventKind = iota
	EventSaved
	EventClosed
	EventReloaded
	EventRenamed
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventSaved:
		return "saved"
	case EventClosed:
		return "closed"
	case EventReloaded:
		return "reloaded"
	case EventRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event изменение набора открытых документов
type Event struct {
	Kind    EventKind
	Path    string // пусто для безымянного документа
	OldPath string // прежний путь для saved и renamed
	Name    string
}
