package textio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge файл превышает настроенный лимит размера
var ErrTooLarge = errors.New("file is too large")

// Error описывает сбой чтения или записи файла
type Error struct {
	Op   string // "read" или "write"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// File результат чтения текстового файла
type File struct {
	Text       string // текст с переводами строк LF
	Encoding   Encoding
	LineEnding LineEnding
}

// Reader читает текстовые файлы с ограничением размера
type Reader struct {
	MaxSize int64 // 0 — без ограничения
}

// Read читает файл, определяя кодировку и стиль перевода строк
func (r Reader) Read(path string) (*File, error) {
	data, err := r.readAll(path)
	if err != nil {
		return nil, err
	}
	sample := data
	if len(sample) > SniffSize {
		sample = sample[:SniffSize]
	}
	return decodeFile(path, data, DetectEncoding(sample))
}

// ReadAs читает файл в явно указанной кодировке
func (r Reader) ReadAs(path string, enc Encoding) (*File, error) {
	data, err := r.readAll(path)
	if err != nil {
		return nil, err
	}
	return decodeFile(path, data, enc)
}

func (r Reader) readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	if r.MaxSize > 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, &Error{Op: "read", Path: path, Err: err}
		}
		if info.Size() > r.MaxSize {
			return nil, &Error{Op: "read", Path: path, Err: fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, info.Size(), r.MaxSize)}
		}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func decodeFile(path string, data []byte, enc Encoding) (*File, error) {
	text, err := Decode(data, enc)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	le, _ := DetectLineEnding(text)
	return &File{
		Text:       NormalizeNewlines(text),
		Encoding:   enc,
		LineEnding: le,
	}, nil
}

// Write сохраняет LF-текст с нужным переводом строк и кодировкой.
// Права существующего файла сохраняются.
func Write(path, text string, enc Encoding, le LineEnding) error {
	data, err := Encode(JoinLines(text, le), enc)
	if err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	return nil
}
