package textio

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
)

// SniffSize сколько байт файла анализируется при определении кодировки
const SniffSize = 64 << 10

// DetectEncoding определяет кодировку по выборке байтов: сначала BOM,
// затем корректный UTF-8, затем статистический детектор. Выбор между
// однобайтовыми кириллическими кодировками делается по частоте букв,
// так как у детектора нет модели для cp866.
func DetectEncoding(sample []byte) Encoding {
	switch {
	case bytes.HasPrefix(sample, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(sample, bomUTF16BE):
		return UTF16BE
	case bytes.HasPrefix(sample, bomUTF16LE):
		return UTF16LE
	}
	if len(sample) == 0 || validUTF8Prefix(sample) {
		return UTF8
	}

	results, err := chardet.NewTextDetector().DetectAll(sample)
	if err == nil {
	candidates:
		for _, r := range results {
			enc, ok := encodingForCharset(r.Charset)
			switch {
			case !ok:
				continue
			case enc == Windows1251 || enc == OEM866:
				break candidates
			default:
				return enc
			}
		}
	}
	if enc, ok := guessCyrillic(sample); ok {
		return enc
	}
	return UTF8
}

// encodingForCharset сопоставляет имя кодировки детектора поддерживаемой
func encodingForCharset(name string) (Encoding, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF-8":
		return UTF8, true
	case "UTF-8-SIG":
		return UTF8BOM, true
	case "UTF-16BE":
		return UTF16BE, true
	case "UTF-16LE", "UTF-16":
		return UTF16LE, true
	case "WINDOWS-1251":
		return Windows1251, true
	case "IBM866", "CP866":
		return OEM866, true
	default:
		return UTF8, false
	}
}

// cyrillicScore доля русских букв среди не-ASCII символов плюс доля
// строчных среди этих букв; обычный текст в своей кодировке дает около 2.
func cyrillicScore(text string) (float64, int) {
	var nonASCII, letters, lower int
	for _, r := range text {
		if r < utf8.RuneSelf {
			continue
		}
		nonASCII++
		if (r >= 'А' && r <= 'я') || r == 'Ё' || r == 'ё' {
			letters++
			if unicode.IsLower(r) {
				lower++
			}
		}
	}
	if nonASCII == 0 || letters == 0 {
		return 0, 0
	}
	return float64(letters)/float64(nonASCII) + float64(lower)/float64(letters), letters
}

// guessCyrillic выбирает между Windows-1251 и OEM-866; false, если ни одна
// из них не дает русского текста
func guessCyrillic(sample []byte) (Encoding, bool) {
	win, err := charmap.Windows1251.NewDecoder().Bytes(sample)
	if err != nil {
		return UTF8, false
	}
	dos, err := charmap.CodePage866.NewDecoder().Bytes(sample)
	if err != nil {
		return UTF8, false
	}
	winScore, winLetters := cyrillicScore(string(win))
	dosScore, dosLetters := cyrillicScore(string(dos))
	switch {
	case winLetters == 0 && dosLetters == 0:
		return UTF8, false
	case dosScore > winScore:
		return OEM866, true
	default:
		return Windows1251, true
	}
}

// validUTF8Prefix допускает обрезанный на границе выборки многобайтовый символ
func validUTF8Prefix(sample []byte) bool {
	if utf8.Valid(sample) {
		return true
	}
	if len(sample) < SniffSize {
		return false
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(sample); cut++ {
		if utf8.Valid(sample[:len(sample)-cut]) {
			return true
		}
	}
	return false
}
