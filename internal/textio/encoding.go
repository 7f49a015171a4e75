package textio

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding кодировка текстового файла
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16BE
	UTF16LE
	Windows1251
	OEM866
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// AllEncodings возвращает кодировки в порядке меню
func AllEncodings() []Encoding {
	return []Encoding{UTF8, UTF8BOM, UTF16BE, UTF16LE, Windows1251, OEM866}
}

// String возвращает название для статус-бара
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8 BOM"
	case UTF16BE:
		return "UTF-16 BE BOM"
	case UTF16LE:
		return "UTF-16 LE BOM"
	case Windows1251:
		return "Windows 1251"
	case OEM866:
		return "OEM 866"
	default:
		return "UTF-8"
	}
}

// Key возвращает стабильный идентификатор для команд и конфигурации
func (e Encoding) Key() string {
	switch e {
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case Windows1251:
		return "windows-1251"
	case OEM866:
		return "oem-866"
	default:
		return "utf-8"
	}
}

// BOM возвращает маркер порядка байтов, который пишется перед текстом
func (e Encoding) BOM() []byte {
	switch e {
	case UTF8BOM:
		return bomUTF8
	case UTF16BE:
		return bomUTF16BE
	case UTF16LE:
		return bomUTF16LE
	default:
		return nil
	}
}

// codec returns the x/text codec without BOM handling; BOMs are written and
// stripped explicitly so every encoding follows the same path.
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case Windows1251:
		return charmap.Windows1251
	case OEM866:
		return charmap.CodePage866
	default:
		return unicode.UTF8
	}
}

// stripBOM убирает BOM кодировки, если он есть в начале данных
func (e Encoding) stripBOM(data []byte) []byte {
	bom := e.BOM()
	if len(bom) > 0 && len(data) >= len(bom) && string(data[:len(bom)]) == string(bom) {
		return data[len(bom):]
	}
	return data
}

// Decode декодирует байты в строку, заменяя ошибочные последовательности на U+FFFD
func Decode(data []byte, enc Encoding) (string, error) {
	data = enc.stripBOM(data)
	if len(data) == 0 {
		return "", nil
	}
	out, err := enc.codec().NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode кодирует строку; символы, которых нет в кодировке, заменяются.
// BOM добавляется для UTF-8 BOM и UTF-16.
func Encode(text string, enc Encoding) ([]byte, error) {
	encoder := encoding.ReplaceUnsupported(enc.codec().NewEncoder())
	body, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	bom := enc.BOM()
	if len(bom) == 0 {
		return body, nil
	}
	out := make([]byte, 0, len(bom)+len(body))
	out = append(out, bom...)
	return append(out, body...), nil
}
