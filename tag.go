package id3v2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

const tagHeaderLen = 10

var tagMagic = []byte("ID3")

// HeaderFlags is the raw flags byte of the 10-byte tag header. Which bits
// are meaningful depends on the version; unknown bits are logged on read
// and never fatal.
type HeaderFlags byte

func (f HeaderFlags) Unsynchronization() bool { return f&0x80 > 0 }

// Compression is only defined for v2.2 and no scheme was ever specified,
// so it is parsed and ignored.
func (f HeaderFlags) Compression() bool    { return f&0x40 > 0 }
func (f HeaderFlags) ExtendedHeader() bool { return f&0x40 > 0 }
func (f HeaderFlags) Experimental() bool   { return f&0x20 > 0 }
func (f HeaderFlags) Footer() bool         { return f&0x10 > 0 }

func knownFlagMask(v Version) HeaderFlags {
	switch v {
	case V22:
		return 0xc0
	case V23:
		return 0xe0
	default:
		return 0xf0
	}
}

// Options controls the write policy of a tag.
type Options struct {
	// Padding is appended after the frames when the tag does not fit its
	// previous on-disk slot, leaving room to grow without a file rewrite.
	Padding int

	// Unsync applies the unsynchronization transform on write whenever
	// the frame data contains a false audio sync pattern.
	Unsync bool
}

func DefaultOptions() Options {
	return Options{Padding: 1024, Unsync: true}
}

// Tag is one ID3v2 tag container. A Tag is created empty with NewTag, by
// decoding a byte region with Decode, or by version conversion with
// Convert. It is not safe for concurrent use.
type Tag struct {
	Version Version
	Flags   HeaderFlags
	Options Options

	// InvalidFrames and EmptyFrameBytes are diagnostic counters filled in
	// by Decode.
	InvalidFrames   int
	EmptyFrameBytes int

	frames       map[string][]Frame
	declaredSize int
}

// NewTag returns an empty tag of the given version. It panics when v is
// not one of V22, V23, V24.
func NewTag(v Version) *Tag {
	if !v.valid() {
		panic(fmt.Sprintf("id3v2: unsupported version %d", byte(v)))
	}

	return &Tag{
		Version: v,
		Options: DefaultOptions(),
		frames:  make(map[string][]Frame),
	}
}

// Decode parses one tag from the start of buf. The caller locates the tag
// region inside the host file; Decode never scans the surrounding format.
//
// A buffer that does not start with the ID3 signature yields ErrNoTag. A
// valid signature with an unrecognized major version yields (nil, nil):
// the silent "no tag" outcome, preserved because callers historically
// depend on it not failing. All recoverable frame damage is absorbed into
// the diagnostic counters; Decode always returns the best tag it could
// assemble.
func Decode(buf []byte) (*Tag, error) {
	if len(buf) < tagHeaderLen || !bytes.Equal(buf[:3], tagMagic) {
		return nil, ErrNoTag
	}

	version := Version(buf[3])
	if !version.valid() {
		logger.Debug().Int("major", int(buf[3])).Msg("unrecognized tag version, ignoring tag")
		return nil, nil
	}

	t := NewTag(version)
	t.Flags = HeaderFlags(buf[5])
	t.declaredSize = syncsafeDecode([4]byte(buf[6:10]))

	if unknown := t.Flags &^ knownFlagMask(version); unknown != 0 {
		logger.Warn().Uint8("flags", uint8(unknown)).Stringer("version", version).
			Msg("unknown header flag bits set")
	}

	body := buf[tagHeaderLen:]
	if len(body) > t.declaredSize {
		body = body[:t.declaredSize]
	}

	if t.Flags.Unsynchronization() {
		body = synchronize(body)
	}

	body = t.skipExtendedHeader(body)
	t.readFrames(body)

	return t, nil
}

// skipExtendedHeader honors the extended header's declared length without
// decoding its body. v2.3 stores the length excluding the length field
// itself, v2.4 includes it.
func (t *Tag) skipExtendedHeader(body []byte) []byte {
	if t.Version == V22 || !t.Flags.ExtendedHeader() || len(body) < 4 {
		return body
	}

	var skip int
	if t.Version == V23 {
		skip = 4 + int(binary.BigEndian.Uint32(body[:4]))
	} else {
		skip = syncsafeDecode([4]byte(body[:4]))
	}

	if skip < 4 || skip > len(body) {
		logger.Warn().Int("size", skip).Msg("implausible extended header size, ignoring it")
		return body
	}

	logger.Debug().Int("size", skip).Msg("skipping extended header")
	return body[skip:]
}

// addDecodedFrame stores a frame read from disk. Repeatable identifiers
// accumulate; a later occurrence of a non-repeatable identifier replaces
// the earlier one.
func (t *Tag) addDecodedFrame(f Frame) {
	if t.Version.desc().dict.repeatable(f.ID) {
		t.frames[f.ID] = append(t.frames[f.ID], f)
		return
	}

	t.frames[f.ID] = []Frame{f}
}

// AddFrame inserts a frame under its identifier, with the same repeatable
// semantics as reading.
func (t *Tag) AddFrame(f Frame) error {
	desc := t.Version.desc()
	if len(f.ID) != desc.idLen || classifyIdentifier(f.ID) != identifierOK {
		return fmt.Errorf("malformed frame identifier %q for %s", f.ID, t.Version)
	}
	if f.Body == nil {
		return fmt.Errorf("frame %s has no body", f.ID)
	}

	t.addDecodedFrame(f)
	return nil
}

// Frames returns the frames stored under an identifier, in read order.
func (t *Tag) Frames(id string) []Frame {
	return t.frames[id]
}

// HasFrame reports whether at least one frame with this identifier exists.
func (t *Tag) HasFrame(id string) bool {
	return len(t.frames[id]) > 0
}

// RemoveFrames deletes every frame with this identifier.
func (t *Tag) RemoveFrames(id string) {
	delete(t.frames, id)
}

// FrameIDs returns the live identifiers in the version's preferred write
// order.
func (t *Tag) FrameIDs() []string {
	dict := t.Version.desc().dict

	ids := make([]string, 0, len(t.frames))
	for id := range t.frames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return dict.less(ids[i], ids[j]) })

	return ids
}

// DeclaredSize returns the tag size recorded in the decoded header,
// excluding the header itself. It is zero for tags not created by Decode.
func (t *Tag) DeclaredSize() int {
	return t.declaredSize
}

// Size returns the space the tag needs on disk right now: header plus
// live frames, independent of the size previously recorded in the file.
// The host writer compares it against the old tag region to decide
// whether a rewrite must grow the file.
func (t *Tag) Size() int {
	desc := t.Version.desc()

	size := tagHeaderLen
	for _, frames := range t.frames {
		for _, f := range frames {
			body, err := f.Body.encode(t.Version)
			if err != nil {
				continue
			}
			size += desc.frameHeaderLen() + len(body)
		}
	}

	return size
}

// Get returns every value stored under the generic key, in frame order.
// It fails only with UnsupportedFieldError; a supported but absent field
// yields an empty slice.
func (t *Tag) Get(key GenericKey) ([]string, error) {
	fs, ok := t.Version.desc().dict.lookup(key)
	if !ok {
		return nil, UnsupportedFieldError{Key: key, Version: t.Version}
	}

	if fs.sub != "" {
		return t.userTextValues(fs), nil
	}

	var values []string
	for _, f := range t.frames[fs.id] {
		switch body := f.Body.(type) {
		case *TextBody:
			values = append(values, body.Values...)
		default:
			values = append(values, f.Body.Value())
		}
	}

	if key == Genre {
		for i, v := range values {
			values[i] = genreToText(v)
		}
	}

	return values, nil
}

// GetFirst returns the first value stored under the generic key, or the
// empty string when the field is absent.
func (t *Tag) GetFirst(key GenericKey) (string, error) {
	values, err := t.Get(key)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}

	return values[0], nil
}

func (t *Tag) userTextValues(fs frameAndSubID) []string {
	var values []string
	for _, f := range t.frames[fs.id] {
		if body, ok := f.Body.(*UserTextBody); ok && body.Description == fs.sub {
			values = append(values, body.Text)
		}
	}

	return values
}

// CreateField stores values under the generic key, replacing what the key
// addressed before. It fails with UnsupportedFieldError when the version
// has no mapping for the key and with FieldDataInvalidError when a value
// fails the target frame's validation.
func (t *Tag) CreateField(key GenericKey, values ...string) error {
	fs, ok := t.Version.desc().dict.lookup(key)
	if !ok {
		return UnsupportedFieldError{Key: key, Version: t.Version}
	}
	if len(values) == 0 {
		return FieldDataInvalidError{Reason: "at least one value is required"}
	}

	values, err := validateFieldValues(key, values)
	if err != nil {
		return err
	}

	if key == Genre && t.Version != V24 {
		for i, v := range values {
			values[i] = genreFromText(v)
		}
	}

	switch {
	case fs.sub != "":
		t.setUserText(fs, values[0])
	case key == Comment:
		t.replaceDescribed(fs.id, Frame{ID: fs.id, Body: &CommentBody{
			Language: "eng",
			Text:     values[0],
		}})
	case key == Lyrics:
		t.replaceDescribed(fs.id, Frame{ID: fs.id, Body: &LyricsBody{
			Language: "eng",
			Lyrics:   values[0],
		}})
	case key == ArtistURL:
		t.frames[fs.id] = []Frame{{ID: fs.id, Body: &URLBody{URL: values[0]}}}
	default:
		t.frames[fs.id] = []Frame{{ID: fs.id, Body: &TextBody{Values: values}}}
	}

	return nil
}

// validateFieldValues applies body-specific validation and normalization.
func validateFieldValues(key GenericKey, values []string) ([]string, error) {
	switch key {
	case Compilation:
		// Boolean-only frame.
		switch strings.ToLower(values[0]) {
		case "1", "true":
			return []string{"1"}, nil
		case "0", "false":
			return []string{"0"}, nil
		default:
			return nil, FieldDataInvalidError{
				Reason: fmt.Sprintf("%q is not a boolean value", values[0]),
			}
		}
	case BPM:
		for _, v := range values {
			if !isDigits(v) {
				return nil, FieldDataInvalidError{
					Reason: fmt.Sprintf("%q is not a number", v),
				}
			}
		}
	case Track, Disc:
		// A numeric position, optionally "n/total".
		for _, v := range values {
			pos, total, hasTotal := strings.Cut(v, "/")
			if !isDigits(pos) || (hasTotal && !isDigits(total)) {
				return nil, FieldDataInvalidError{
					Reason: fmt.Sprintf("%q is not a position in a set", v),
				}
			}
		}
	}

	return values, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// setUserText replaces the user text frame carrying the key's
// description, leaving user frames with other descriptions alone.
func (t *Tag) setUserText(fs frameAndSubID, value string) {
	frame := Frame{ID: fs.id, Body: &UserTextBody{Description: fs.sub, Text: value}}

	frames := t.frames[fs.id]
	for i, f := range frames {
		if body, ok := f.Body.(*UserTextBody); ok && body.Description == fs.sub {
			frames[i] = frame
			return
		}
	}

	t.frames[fs.id] = append(frames, frame)
}

// replaceDescribed replaces the frame with an empty description (the one
// the generic API addresses), keeping described siblings.
func (t *Tag) replaceDescribed(id string, frame Frame) {
	frames := t.frames[id]
	for i, f := range frames {
		if describedDescription(f.Body) == "" {
			frames[i] = frame
			return
		}
	}

	t.frames[id] = append(frames, frame)
}

func describedDescription(b FrameBody) string {
	switch body := b.(type) {
	case *CommentBody:
		return body.Description
	case *LyricsBody:
		return body.Description
	case *UserTextBody:
		return body.Description
	default:
		return ""
	}
}

// DeleteField removes exactly the field the key addresses: for sub-field
// keys only the matching user frame, for everything else the mapped
// identifier's frames. It never touches unrelated fields.
func (t *Tag) DeleteField(key GenericKey) error {
	fs, ok := t.Version.desc().dict.lookup(key)
	if !ok {
		return UnsupportedFieldError{Key: key, Version: t.Version}
	}

	if fs.sub == "" {
		delete(t.frames, fs.id)
		return nil
	}

	frames := t.frames[fs.id][:0]
	for _, f := range t.frames[fs.id] {
		if body, ok := f.Body.(*UserTextBody); ok && body.Description == fs.sub {
			continue
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		delete(t.frames, fs.id)
	} else {
		t.frames[fs.id] = frames
	}

	return nil
}
