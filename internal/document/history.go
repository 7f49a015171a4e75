package document

// DefaultMaxHistory глубина истории отмены по умолчанию
const DefaultMaxHistory = 100

type snapshot struct {
	lines  [][]rune
	cursor Pos
	anchor *Pos
	gen    uint64 // поколение состояния, см. Document.gen
}

// history хранит снимки буфера для undo/redo
type history struct {
	undo []snapshot
	redo []snapshot
	max  int
}

func (h *history) push(s snapshot) {
	h.undo = append(h.undo, s)
	if h.max > 0 && len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
	h.redo = nil
}

func (h *history) reset() {
	h.undo = nil
	h.redo = nil
}

func takeSnapshot(b *Buffer, gen uint64) snapshot {
	s := snapshot{
		lines:  b.cloneLines(),
		cursor: b.cursor,
		gen:    gen,
	}
	if b.anchor != nil {
		anchor := *b.anchor
		s.anchor = &anchor
	}
	return s
}

func (s snapshot) restore(b *Buffer) {
	b.lines = s.lines
	b.cursor = s.cursor
	if s.anchor != nil {
		anchor := *s.anchor
		b.anchor = &anchor
	} else {
		b.anchor = nil
	}
	b.normalizeCursor()
}
