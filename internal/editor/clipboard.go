package editor

import "github.com/atotto/clipboard"

// Clipboard буфер обмена редактора
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard системный буфер обмена с внутренним регистром на случай,
// когда системный недоступен (нет xclip/xsel, сессия без дисплея)
type SystemClipboard struct {
	register string
}

func (c *SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return c.register, nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return c.register, nil
	}
	return text, nil
}

func (c *SystemClipboard) WriteText(s string) error {
	c.register = s
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(s)
}

// MemoryClipboard буфер обмена только в памяти процесса
type MemoryClipboard struct {
	Text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.Text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.Text = s
	return nil
}
