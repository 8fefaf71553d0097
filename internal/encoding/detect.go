// Package encoding normalises CSV exports to UTF-8 before they are parsed.
// Spreadsheet tools still emit UTF-16 or Windows-1252 files for names with accents.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader returns a reader that yields r's content as UTF-8.
//
// A UTF-8 BOM is dropped and UTF-16 BOMs select a UTF-16 decoder. Otherwise
// valid UTF-8 passes through untouched, chardet picks among the Latin
// charsets, and anything else is read as Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sniffing encoding: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(head, bomUTF16LE):
		return decode(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), nil
	case bytes.HasPrefix(head, bomUTF16BE):
		return decode(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), nil
	case looksUTF8(head):
		return br, nil
	}

	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		switch res.Charset {
		case "UTF-8":
			return br, nil
		case "ISO-8859-9":
			return decode(br, charmap.ISO8859_9), nil
		case "ISO-8859-15":
			return decode(br, charmap.ISO8859_15), nil
		}
	}
	return decode(br, charmap.Windows1252), nil
}

// looksUTF8 tolerates a rune cut in half at the end of a full sniff window.
func looksUTF8(head []byte) bool {
	if len(head) < sniffSize {
		return utf8.Valid(head)
	}
	for i := 0; i < utf8.UTFMax; i++ {
		if utf8.Valid(head[:len(head)-i]) {
			return true
		}
	}
	return false
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
