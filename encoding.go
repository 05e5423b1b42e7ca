package id3v2

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that prefixes most frame bodies.
// v2.2 and v2.3 define only ISO-8859-1 and UTF-16 with BOM; v2.4 adds
// UTF-16BE without BOM and UTF-8.
type Encoding byte

const (
	EncodingISO88591 Encoding = 0
	EncodingUTF16    Encoding = 1
	EncodingUTF16BE  Encoding = 2
	EncodingUTF8     Encoding = 3
)

var encodingNames = []string{"ISO-8859-1", "UTF-16", "UTF-16BE", "UTF-8"}

func (e Encoding) String() string {
	if int(e) >= len(encodingNames) {
		return fmt.Sprintf("unknown encoding %d", byte(e))
	}

	return encodingNames[e]
}

func (e Encoding) validFor(v Version) bool {
	if v == V24 {
		return e <= EncodingUTF8
	}

	return e <= EncodingUTF16
}

var (
	utf16bom = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	utf16be  = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// decodeText converts frame body bytes in e to a UTF-8 string. A trailing
// terminator is stripped; real files are inconsistent about including one.
func (e Encoding) decodeText(b []byte) (string, error) {
	b = bytes.TrimSuffix(b, e.terminator())

	switch e {
	case EncodingISO88591:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		return string(out), err
	case EncodingUTF16:
		if len(b)%2 != 0 {
			return "", fmt.Errorf("UTF-16 text with odd length %d", len(b))
		}
		out, err := utf16bom.NewDecoder().Bytes(b)
		return string(out), err
	case EncodingUTF16BE:
		if len(b)%2 != 0 {
			return "", fmt.Errorf("UTF-16BE text with odd length %d", len(b))
		}
		out, err := utf16be.NewDecoder().Bytes(b)
		return string(out), err
	case EncodingUTF8:
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown text encoding %d", byte(e))
	}
}

// encodeText converts a UTF-8 string to bytes in e, without a terminator.
func (e Encoding) encodeText(s string) ([]byte, error) {
	switch e {
	case EncodingISO88591:
		return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	case EncodingUTF16:
		return utf16bom.NewEncoder().Bytes([]byte(s))
	case EncodingUTF16BE:
		return utf16be.NewEncoder().Bytes([]byte(s))
	case EncodingUTF8:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unknown text encoding %d", byte(e))
	}
}

// terminator returns the null terminator for e: two zero bytes for the
// wide encodings, one for the others.
func (e Encoding) terminator() []byte {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return []byte{0, 0}
	}

	return []byte{0}
}

// chooseEncoding picks the cheapest encoding of v that can represent all
// of the given strings: ISO-8859-1 when everything fits, otherwise UTF-8
// for v2.4 and UTF-16 with BOM for the older versions.
func chooseEncoding(v Version, strs ...string) Encoding {
	enc := charmap.ISO8859_1.NewEncoder()
	for _, s := range strs {
		if _, err := enc.Bytes([]byte(s)); err != nil {
			if v == V24 {
				return EncodingUTF8
			}
			return EncodingUTF16
		}
	}

	return EncodingISO88591
}

// splitNull splits data on e's terminator into at most n parts. For the
// wide encodings the terminator must sit on a code-unit boundary, so a
// plain bytes.SplitN is only safe for the single-byte encodings.
func splitNull(data []byte, e Encoding, n int) [][]byte {
	if e == EncodingISO88591 || e == EncodingUTF8 {
		return bytes.SplitN(data, []byte{0}, n)
	}

	var (
		parts [][]byte
		prev  int
	)

	for i := 0; i+1 < len(data) && len(parts) < n-1; i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			parts = append(parts, data[prev:i])
			prev = i + 2
		}
	}

	return append(parts, data[prev:])
}
