package id3v2

import (
	"fmt"
	"strings"
)

// Frame is one identified unit of tag payload: a fixed-width identifier,
// optional flags (v2.3/v2.4 only) and a typed body. The declared size on
// disk covers the body only, never the frame header.
type Frame struct {
	ID    string
	Flags FrameFlags
	Body  FrameBody
}

// FrameFlags is the raw 16-bit flag field of a v2.3/v2.4 frame header.
// Compressed and encrypted bodies are recognized but kept opaque.
type FrameFlags uint16

func (f FrameFlags) PreserveTagAlteration() bool  { return f&0x4000 == 0 }
func (f FrameFlags) PreserveFileAlteration() bool { return f&0x2000 == 0 }
func (f FrameFlags) ReadOnly() bool               { return f&0x1000 > 0 }
func (f FrameFlags) Compressed() bool             { return f&0x0080 > 0 }
func (f FrameFlags) Encrypted() bool              { return f&0x0040 > 0 }
func (f FrameFlags) Grouped() bool                { return f&0x0020 > 0 }

// BodyKind is the closed set of payload shapes a frame body can take.
// Identifiers resolve to a kind at parse time; unknown identifiers map to
// KindBinary rather than failing.
type BodyKind int

const (
	KindText BodyKind = iota
	KindUserText
	KindURL
	KindUserURL
	KindComment
	KindLyrics
	KindPicture
	KindCounter
	KindPopularimeter
	KindUniqueFileID
	KindBinary
)

// FrameBody is one of the closed set of payload shapes.
type FrameBody interface {
	Kind() BodyKind

	// Value returns the body's primary value as text, for display and for
	// the generic field getters.
	Value() string

	// encode serializes the body for the given version, excluding the
	// frame header.
	encode(v Version) ([]byte, error)
}

// TextBody is the payload of the T*** information frames (except the
// user-defined TXXX). v2.4 separates multiple values with null bytes.
type TextBody struct {
	Encoding Encoding
	Values   []string
}

func (b *TextBody) Kind() BodyKind { return KindText }

func (b *TextBody) Value() string {
	if len(b.Values) == 0 {
		return ""
	}

	return b.Values[0]
}

func (b *TextBody) encode(v Version) ([]byte, error) {
	enc := chooseEncoding(v, b.Values...)
	raw, err := enc.encodeText(strings.Join(b.Values, "\x00"))
	if err != nil {
		return nil, err
	}

	return append([]byte{byte(enc)}, raw...), nil
}

// UserTextBody is the payload of TXXX (TXX in v2.2).
type UserTextBody struct {
	Encoding    Encoding
	Description string
	Text        string
}

func (b *UserTextBody) Kind() BodyKind { return KindUserText }
func (b *UserTextBody) Value() string  { return b.Text }

func (b *UserTextBody) encode(v Version) ([]byte, error) {
	return encodeDescribed(v, "", b.Description, b.Text)
}

// URLBody is the payload of the W*** link frames (except WXXX). URLs are
// always ISO-8859-1 with no encoding byte.
type URLBody struct {
	URL string
}

func (b *URLBody) Kind() BodyKind { return KindURL }
func (b *URLBody) Value() string  { return b.URL }

func (b *URLBody) encode(Version) ([]byte, error) {
	return EncodingISO88591.encodeText(b.URL)
}

// UserURLBody is the payload of WXXX (WXX in v2.2). The description uses
// the declared encoding, the URL itself stays ISO-8859-1.
type UserURLBody struct {
	Encoding    Encoding
	Description string
	URL         string
}

func (b *UserURLBody) Kind() BodyKind { return KindUserURL }
func (b *UserURLBody) Value() string  { return b.URL }

func (b *UserURLBody) encode(v Version) ([]byte, error) {
	enc := chooseEncoding(v, b.Description)
	desc, err := enc.encodeText(b.Description)
	if err != nil {
		return nil, err
	}
	url, err := EncodingISO88591.encodeText(b.URL)
	if err != nil {
		return nil, err
	}

	out := append([]byte{byte(enc)}, desc...)
	out = append(out, enc.terminator()...)
	return append(out, url...), nil
}

// CommentBody is the payload of COMM (COM in v2.2): a 3-byte language
// code, a described comment text. Comments are repeatable per
// language/description pair.
type CommentBody struct {
	Encoding    Encoding
	Language    string
	Description string
	Text        string
}

func (b *CommentBody) Kind() BodyKind { return KindComment }
func (b *CommentBody) Value() string  { return b.Text }

func (b *CommentBody) encode(v Version) ([]byte, error) {
	return encodeDescribed(v, b.Language, b.Description, b.Text)
}

// LyricsBody is the payload of USLT (ULT in v2.2), laid out like a
// comment.
type LyricsBody struct {
	Encoding    Encoding
	Language    string
	Description string
	Lyrics      string
}

func (b *LyricsBody) Kind() BodyKind { return KindLyrics }
func (b *LyricsBody) Value() string  { return b.Lyrics }

func (b *LyricsBody) encode(v Version) ([]byte, error) {
	return encodeDescribed(v, b.Language, b.Description, b.Lyrics)
}

// encodeDescribed lays out the shared shape of TXXX/COMM/USLT bodies:
// encoding byte, optional 3-byte language, terminated description, text.
func encodeDescribed(v Version, language, description, text string) ([]byte, error) {
	enc := chooseEncoding(v, description, text)
	desc, err := enc.encodeText(description)
	if err != nil {
		return nil, err
	}
	body, err := enc.encodeText(text)
	if err != nil {
		return nil, err
	}

	out := []byte{byte(enc)}
	if language != "" {
		lang := language
		if len(lang) != 3 {
			lang = "XXX"
		}
		out = append(out, lang...)
	}
	out = append(out, desc...)
	out = append(out, enc.terminator()...)
	return append(out, body...), nil
}

// PictureType classifies an attached image (front cover, back cover, ...).
type PictureType byte

func (p PictureType) String() string {
	if int(p) >= len(PictureTypes) {
		return ""
	}

	return PictureTypes[p]
}

// PictureTypes are the names defined for the picture type byte.
var PictureTypes = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

// PictureBody is the payload of APIC (PIC in v2.2). MIMEType is kept
// canonical; v2.2 stores a 3-character image format code instead and the
// codec maps between the two on the wire.
type PictureBody struct {
	Encoding    Encoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

func (b *PictureBody) Kind() BodyKind { return KindPicture }
func (b *PictureBody) Value() string  { return b.MIMEType }

func (b *PictureBody) encode(v Version) ([]byte, error) {
	enc := chooseEncoding(v, b.Description)
	desc, err := enc.encodeText(b.Description)
	if err != nil {
		return nil, err
	}

	out := []byte{byte(enc)}
	if v == V22 {
		out = append(out, imageFormatForMIME(b.MIMEType)...)
	} else {
		mime, err := EncodingISO88591.encodeText(b.MIMEType)
		if err != nil {
			return nil, err
		}
		out = append(out, mime...)
		out = append(out, 0)
	}
	out = append(out, byte(b.PictureType))
	out = append(out, desc...)
	out = append(out, enc.terminator()...)
	return append(out, b.Data...), nil
}

var imageFormats = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
	"image/bmp":  "BMP",
}

func imageFormatForMIME(mime string) string {
	if f, ok := imageFormats[strings.ToLower(mime)]; ok {
		return f
	}
	// Unknown types keep their subtype's first three characters so the
	// field stays fixed width.
	if i := strings.IndexByte(mime, '/'); i >= 0 && len(mime) >= i+4 {
		return strings.ToUpper(mime[i+1 : i+4])
	}

	return "   "
}

func mimeForImageFormat(format string) string {
	for mime, f := range imageFormats {
		if f == strings.ToUpper(format) {
			return mime
		}
	}

	return "image/unknown"
}

// CounterBody is the payload of PCNT (CNT in v2.2): a single play count
// stored as a minimal-byte big-endian integer of at least four bytes.
type CounterBody struct {
	Count uint64
}

func (b *CounterBody) Kind() BodyKind { return KindCounter }
func (b *CounterBody) Value() string  { return fmt.Sprintf("%d", b.Count) }

func (b *CounterBody) encode(Version) ([]byte, error) {
	return encodeUint(b.Count, 4), nil
}

// PopularimeterBody is the payload of POPM (POP in v2.2): an ISO-8859-1
// email, a one-byte rating and an optional minimal-byte play count.
type PopularimeterBody struct {
	Email  string
	Rating byte
	Count  uint64
}

func (b *PopularimeterBody) Kind() BodyKind { return KindPopularimeter }
func (b *PopularimeterBody) Value() string  { return fmt.Sprintf("%d", b.Rating) }

func (b *PopularimeterBody) encode(Version) ([]byte, error) {
	email, err := EncodingISO88591.encodeText(b.Email)
	if err != nil {
		return nil, err
	}

	out := append(email, 0, b.Rating)
	return append(out, encodeUint(b.Count, 1)...), nil
}

// UniqueFileIDBody is the payload of UFID (UFI in v2.2).
type UniqueFileIDBody struct {
	Owner      string
	Identifier []byte
}

func (b *UniqueFileIDBody) Kind() BodyKind { return KindUniqueFileID }
func (b *UniqueFileIDBody) Value() string  { return string(b.Identifier) }

func (b *UniqueFileIDBody) encode(Version) ([]byte, error) {
	owner, err := EncodingISO88591.encodeText(b.Owner)
	if err != nil {
		return nil, err
	}

	out := append(owner, 0)
	return append(out, b.Identifier...), nil
}

// BinaryBody carries the raw payload of any frame the codec has no
// structured decoder for, including compressed and encrypted bodies.
type BinaryBody struct {
	Data []byte
}

func (b *BinaryBody) Kind() BodyKind { return KindBinary }
func (b *BinaryBody) Value() string  { return string(b.Data) }

func (b *BinaryBody) encode(Version) ([]byte, error) {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out, nil
}
