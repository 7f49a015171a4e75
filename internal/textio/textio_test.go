package textio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	texts := map[Encoding]string{
		UTF8:        "first line\nвторая строка\n\tthird ✓",
		UTF8BOM:     "first line\nвторая строка\n\tthird ✓",
		UTF16BE:     "first line\nвторая строка\n\tthird ✓",
		UTF16LE:     "first line\nвторая строка\n\tthird ✓",
		Windows1251: "first line\nвторая строка\n\tthird",
		OEM866:      "first line\nвторая строка\n\tthird",
	}
	dir := t.TempDir()
	for enc, text := range texts {
		for _, le := range []LineEnding{CRLF, LF} {
			path := filepath.Join(dir, enc.Key()+"-"+le.String()+".txt")
			if err := Write(path, text, enc, le); err != nil {
				t.Fatalf("write %s/%s: %v", enc, le, err)
			}
			got, err := Reader{}.ReadAs(path, enc)
			if err != nil {
				t.Fatalf("read %s/%s: %v", enc, le, err)
			}
			if got.Text != text {
				t.Fatalf("%s/%s text: got %q, want %q", enc, le, got.Text, text)
			}
			if got.LineEnding != le {
				t.Fatalf("%s/%s line ending: got %s", enc, le, got.LineEnding)
			}
		}
	}
}

func TestReadDetectsBOMEncodings(t *testing.T) {
	dir := t.TempDir()
	text := "hello\nмир"
	for _, enc := range []Encoding{UTF8, UTF8BOM, UTF16BE, UTF16LE} {
		path := filepath.Join(dir, enc.Key()+".txt")
		if err := Write(path, text, enc, LF); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := Reader{}.Read(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.Encoding != enc {
			t.Fatalf("detected %s, want %s", got.Encoding, enc)
		}
		if got.Text != text {
			t.Fatalf("text: got %q, want %q", got.Text, text)
		}
	}
}

func TestEncodeWritesBOM(t *testing.T) {
	cases := []struct {
		enc  Encoding
		want []byte
	}{
		{UTF16BE, []byte{0xFE, 0xFF, 0x00, 'a'}},
		{UTF16LE, []byte{0xFF, 0xFE, 'a', 0x00}},
		{UTF8BOM, []byte{0xEF, 0xBB, 0xBF, 'a'}},
		{UTF8, []byte{'a'}},
	}
	for _, tc := range cases {
		got, err := Encode("a", tc.enc)
		if err != nil {
			t.Fatalf("%s: %v", tc.enc, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%s: got % x, want % x", tc.enc, got, tc.want)
		}
	}
}

func TestEncodeReplacesUnsupportedRunes(t *testing.T) {
	got, err := Encode("a✓b", Windows1251)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(got) != 3 || got[0] != 'a' || got[2] != 'b' {
		t.Fatalf("unexpected bytes % x", got)
	}
}

func TestDecodeReplacesInvalidUTF8(t *testing.T) {
	got, err := Decode([]byte{'a', 0xFF, 'b'}, UTF8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "a�b" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectLineEnding(t *testing.T) {
	cases := []struct {
		text string
		want LineEnding
		ok   bool
	}{
		{"a\r\nb\nc", CRLF, true},
		{"a\nb", LF, true},
		{"abc", CRLF, false},
		{"", CRLF, false},
	}
	for _, tc := range cases {
		got, ok := DetectLineEnding(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%q: got %s/%v, want %s/%v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectEncodingPlainASCIIIsUTF8(t *testing.T) {
	if got := DetectEncoding([]byte("plain ascii text")); got != UTF8 {
		t.Fatalf("got %s", got)
	}
	if got := DetectEncoding(nil); got != UTF8 {
		t.Fatalf("empty: got %s", got)
	}
}

func TestEncodingForCharset(t *testing.T) {
	cases := []struct {
		name string
		want Encoding
		ok   bool
	}{
		{"UTF-8", UTF8, true},
		{"UTF-8-SIG", UTF8BOM, true},
		{"windows-1251", Windows1251, true},
		{"IBM866", OEM866, true},
		{"UTF-16BE", UTF16BE, true},
		{"ISO-8859-1", UTF8, false},
	}
	for _, c := range cases {
		got, ok := encodingForCharset(c.name)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: got %s/%v, want %s/%v", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestReadDetectsCyrillicCodepages(t *testing.T) {
	texts := []string{
		"first line\nвторая строка",
		"Привет, мир!\nЭТО ПРОВЕРКА кодировки: съешь же ещё этих мягких французских булок",
		"ёлка",
	}
	dir := t.TempDir()
	for _, enc := range []Encoding{Windows1251, OEM866} {
		for i, text := range texts {
			path := filepath.Join(dir, enc.Key()+"-"+string(rune('a'+i))+".txt")
			if err := Write(path, text, enc, LF); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := Reader{}.Read(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got.Encoding != enc {
				t.Fatalf("%q: detected %s, want %s", text, got.Encoding, enc)
			}
			if got.Text != text {
				t.Fatalf("text: got %q, want %q", got.Text, text)
			}
		}
	}
}

func TestReadMissingFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Reader{}.Read(path)
	var ioErr *Error
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ioErr.Op != "read" || ioErr.Path != path {
		t.Fatalf("unexpected error fields: %+v", ioErr)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestReadRejectsLargeFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 2048), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Reader{MaxSize: 1024}.Read(path)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestWriteFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
	err := Write(path, "text", UTF8, LF)
	var ioErr *Error
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("expected write error, got %v", err)
	}
}
