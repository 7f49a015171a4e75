package document

import (
	"path/filepath"
	"strings"

	"notepad-tui/internal/textio"
)

// Format тип документа для статус-бара
type Format int

const (
	FormatText Format = iota
	FormatOther
)

// String возвращает подпись формата; для прочих файлов подпись пустая
func (f Format) String() string {
	if f == FormatText {
		return "Text File"
	}
	return ""
}

// FormatForName определяет формат по расширению имени файла
func FormatForName(name string) Format {
	switch strings.TrimPrefix(filepath.Ext(name), ".") {
	case "txt", "TXT":
		return FormatText
	default:
		return FormatOther
	}
}

// State состояние вкладки: изменен ли документ и есть ли у него путь
type State struct {
	Modified bool
	Named    bool
}

// Document открытый документ со всеми метаданными
type Document struct {
	Name       string // заголовок вкладки
	Path       string // пусто для безымянного документа
	Encoding   textio.Encoding
	LineEnding textio.LineEnding
	Format     Format
	Zoom       int

	buf     *Buffer
	history history

	// Каждое состояние текста получает свое поколение; документ изменен,
	// пока текущее поколение не совпадает с сохраненным.
	gen       uint64
	lastGen   uint64
	savedGen  uint64
	metaDirty bool // кодировка или перевод строк изменены после сохранения
}

// New создает пустой безымянный документ
func New(name string) *Document {
	return &Document{
		Name:       name,
		Encoding:   textio.UTF8,
		LineEnding: textio.CRLF,
		Format:     FormatForName(name),
		buf:        NewBuffer(""),
		history:    history{max: DefaultMaxHistory},
	}
}

// FromFile создает документ из прочитанного файла
func FromFile(path string, f *textio.File) *Document {
	d := New(filepath.Base(path))
	d.Path = path
	d.Encoding = f.Encoding
	d.LineEnding = f.LineEnding
	d.buf.SetText(f.Text)
	return d
}

// SetMaxHistory ограничивает глубину истории отмены
func (d *Document) SetMaxHistory(n int) {
	d.history.max = n
}

// Buffer возвращает буфер документа
func (d *Document) Buffer() *Buffer {
	return d.buf
}

// Text возвращает текст документа (LF)
func (d *Document) Text() string {
	return d.buf.Text()
}

// IsEmpty пустой ли документ
func (d *Document) IsEmpty() bool {
	return d.buf.IsEmpty()
}

// Modified изменен ли документ с последнего сохранения
func (d *Document) Modified() bool {
	return d.gen != d.savedGen || d.metaDirty
}

// markClean запоминает текущее состояние как совпадающее с диском
func (d *Document) markClean() {
	d.savedGen = d.gen
	d.metaDirty = false
}

// Untitled нет ли у документа пути на диске
func (d *Document) Untitled() bool {
	return d.Path == ""
}

// State возвращает состояние вкладки
func (d *Document) State() State {
	return State{Modified: d.Modified(), Named: d.Path != ""}
}

// DisplayName полный путь для именованного документа, иначе имя вкладки
func (d *Document) DisplayName() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}

// Edit выполняет изменение буфера одним шагом отмены.
// fn возвращает false, если текст не изменился.
func (d *Document) Edit(fn func(b *Buffer) bool) bool {
	before := takeSnapshot(d.buf, d.gen)
	if !fn(d.buf) {
		return false
	}
	d.history.push(before)
	d.lastGen++
	d.gen = d.lastGen
	return true
}

// CanUndo есть ли что отменять
func (d *Document) CanUndo() bool { return len(d.history.undo) > 0 }

// CanRedo есть ли что повторять
func (d *Document) CanRedo() bool { return len(d.history.redo) > 0 }

// Undo отменяет последнее изменение
func (d *Document) Undo() bool {
	if len(d.history.undo) == 0 {
		return false
	}
	d.history.redo = append(d.history.redo, takeSnapshot(d.buf, d.gen))
	snap := d.history.undo[len(d.history.undo)-1]
	d.history.undo = d.history.undo[:len(d.history.undo)-1]
	snap.restore(d.buf)
	d.gen = snap.gen
	return true
}

// Redo повторяет отмененное изменение
func (d *Document) Redo() bool {
	if len(d.history.redo) == 0 {
		return false
	}
	d.history.undo = append(d.history.undo, takeSnapshot(d.buf, d.gen))
	snap := d.history.redo[len(d.history.redo)-1]
	d.history.redo = d.history.redo[:len(d.history.redo)-1]
	snap.restore(d.buf)
	d.gen = snap.gen
	return true
}

// SetEncoding меняет кодировку сохранения; непустой документ помечается измененным
func (d *Document) SetEncoding(enc textio.Encoding) {
	if d.Encoding == enc {
		return
	}
	d.Encoding = enc
	if !d.IsEmpty() {
		d.metaDirty = true
	}
}

// SetLineEnding меняет стиль перевода строк; непустой документ помечается измененным
func (d *Document) SetLineEnding(le textio.LineEnding) {
	if d.LineEnding == le {
		return
	}
	d.LineEnding = le
	if !d.IsEmpty() {
		d.metaDirty = true
	}
}

// MarkSaved переводит документ в состояние «сохранен» под указанным путем
func (d *Document) MarkSaved(path string) {
	d.Path = path
	d.Name = filepath.Base(path)
	d.Format = FormatForName(path)
	d.markClean()
}

// Reload заменяет содержимое данными с диска; история отмены сбрасывается
func (d *Document) Reload(f *textio.File) {
	cursor := d.buf.Cursor()
	d.buf.SetText(f.Text)
	d.buf.MoveTo(cursor.Line, cursor.Col)
	d.Encoding = f.Encoding
	d.LineEnding = f.LineEnding
	d.history.reset()
	d.lastGen++
	d.gen = d.lastGen
	d.markClean()
}

// Rename меняет путь и имя документа без записи на диск
func (d *Document) Rename(name, path string) {
	d.Name = name
	if path != "" {
		d.Path = path
		d.Format = FormatForName(path)
	} else {
		d.Format = FormatForName(name)
	}
}
