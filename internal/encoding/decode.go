// Package encoding turns bank exports of unknown charset into UTF-8 text.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	textenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names reported by NewUTF8Reader.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
	ISO88591    = "ISO-8859-1"
	ISO88599    = "ISO-8859-9"
	ISO885915   = "ISO-8859-15"
)

// sniffSize is how much of the input is inspected before choosing a decoder.
const sniffSize = 4096

var boms = []struct {
	prefix  []byte
	charset string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// decoders lists the single-byte charsets chardet may report that we know how to decode.
// Latin-1 exports are decoded as Windows-1252, which is a superset in the printable range.
var decoders = map[string]textenc.Encoding{
	Windows1252: charmap.Windows1252,
	ISO88591:    charmap.Windows1252,
	ISO885915:   charmap.ISO8859_15,
	ISO88599:    charmap.ISO8859_9,
}

// NewUTF8Reader returns a reader yielding the input as UTF-8 with any BOM removed,
// together with the charset it settled on.
//
// Detection order:
//  1. BOM (UTF-8 is stripped, UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 is passed through
//  3. chardet heuristics
//  4. Windows-1252
func NewUTF8Reader(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(buf, b.prefix) {
			continue
		}

		switch b.charset {
		case UTF8:
			_, _ = br.Discard(len(b.prefix))
			return br, UTF8, nil
		case UTF16LE:
			return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), UTF16LE, nil
		case UTF16BE:
			return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), UTF16BE, nil
		}
	}

	if validUTF8Prefix(buf) {
		return br, UTF8, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == UTF8 {
			return br, UTF8, nil
		}

		if enc, ok := decoders[result.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), result.Charset, nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), Windows1252, nil
}

// validUTF8Prefix is utf8.Valid tolerant of a multi-byte rune cut off at the end of the sniff window.
func validUTF8Prefix(buf []byte) bool {
	if utf8.Valid(buf) {
		return true
	}

	for cut := 1; cut < utf8.UTFMax && cut <= len(buf); cut++ {
		head, tail := buf[:len(buf)-cut], buf[len(buf)-cut:]
		if utf8.Valid(head) && !utf8.FullRune(tail) {
			return true
		}
	}

	return false
}
