package id3v2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// decodeFrame reads one frame from the start of data and returns it along
// with the number of bytes consumed. Failures are classified, not fatal:
//
//   - errPadding: the identifier bytes are not letter-like, the rest of
//     the payload is padding and parsing stops cleanly
//   - InvalidIdentifierError: letter-like but malformed identifier, the
//     stream cannot be resynchronized safely
//   - errEmptyFrame: declared size zero, skip the header and continue
//   - CorruptFrameError: the header parsed but the body failed its format
//     checks, skip the declared size and continue
//   - errTruncated: the buffer ended mid-frame
func decodeFrame(data []byte, v Version) (Frame, int, error) {
	desc := v.desc()
	hdrLen := desc.frameHeaderLen()

	if len(data) < hdrLen {
		if len(data) == 0 || data[0] == 0 {
			return Frame{}, 0, errPadding
		}
		return Frame{}, 0, errTruncated
	}

	id := string(data[:desc.idLen])
	switch classifyIdentifier(id) {
	case identifierPadding:
		return Frame{}, 0, errPadding
	case identifierInvalid:
		return Frame{}, 0, InvalidIdentifierError{ID: id}
	}

	size := decodeFrameSize(data[desc.idLen:hdrLen-desc.flagsLen], desc)
	if size == 0 {
		return Frame{}, hdrLen, errEmptyFrame
	}

	var flags FrameFlags
	if desc.flagsLen == 2 {
		flags = FrameFlags(binary.BigEndian.Uint16(data[hdrLen-2 : hdrLen]))
	}

	if size > len(data)-hdrLen {
		return Frame{}, 0, errTruncated
	}

	body := data[hdrLen : hdrLen+size]
	consumed := hdrLen + size

	frame := Frame{ID: id, Flags: flags}

	// Compressed and encrypted bodies are recognized but kept opaque.
	if flags.Compressed() || flags.Encrypted() {
		frame.Body = &BinaryBody{Data: append([]byte(nil), body...)}
		return frame, consumed, nil
	}

	fb, err := decodeBody(desc.dict.bodyKindOf(id), body, v)
	if err != nil {
		return Frame{}, consumed, CorruptFrameError{ID: id, Err: err}
	}
	frame.Body = fb

	return frame, consumed, nil
}

type identifierClass int

const (
	identifierOK identifierClass = iota
	identifierPadding
	identifierInvalid
)

// classifyIdentifier separates padding from misaligned garbage. Bytes
// outside the alphanumeric range mean padding (zero fill, or data no
// parser should walk into); ASCII-alphanumeric identifiers that break the
// uppercase rule are invalid and stop the stream.
func classifyIdentifier(id string) identifierClass {
	invalid := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
			invalid = true
		default:
			return identifierPadding
		}
	}

	if invalid {
		return identifierInvalid
	}

	return identifierOK
}

func decodeFrameSize(b []byte, desc *versionDesc) int {
	if desc.syncsafeSize {
		return syncsafeDecode([4]byte(b))
	}

	size := 0
	for _, c := range b {
		size = size<<8 | int(c)
	}

	return size
}

func decodeBody(kind BodyKind, body []byte, v Version) (FrameBody, error) {
	switch kind {
	case KindText:
		return decodeTextBody(body, v)
	case KindUserText:
		return decodeUserTextBody(body, v)
	case KindURL:
		return decodeURLBody(body)
	case KindUserURL:
		return decodeUserURLBody(body, v)
	case KindComment:
		b, err := decodeLanguageDescribed(body, v)
		if err != nil {
			return nil, err
		}
		return &CommentBody{Encoding: b.enc, Language: b.lang, Description: b.desc, Text: b.text}, nil
	case KindLyrics:
		b, err := decodeLanguageDescribed(body, v)
		if err != nil {
			return nil, err
		}
		return &LyricsBody{Encoding: b.enc, Language: b.lang, Description: b.desc, Lyrics: b.text}, nil
	case KindPicture:
		return decodePictureBody(body, v)
	case KindCounter:
		return &CounterBody{Count: decodeUint(body)}, nil
	case KindPopularimeter:
		return decodePopularimeterBody(body)
	case KindUniqueFileID:
		return decodeUniqueFileIDBody(body)
	default:
		return &BinaryBody{Data: append([]byte(nil), body...)}, nil
	}
}

func bodyEncoding(body []byte, v Version) (Encoding, []byte, error) {
	if len(body) == 0 {
		return 0, nil, errors.New("missing encoding byte")
	}

	enc := Encoding(body[0])
	if !enc.validFor(v) {
		return 0, nil, fmt.Errorf("encoding %d not defined in %s", body[0], v)
	}

	return enc, body[1:], nil
}

func decodeTextBody(body []byte, v Version) (FrameBody, error) {
	enc, rest, err := bodyEncoding(body, v)
	if err != nil {
		return nil, err
	}

	s, err := enc.decodeText(rest)
	if err != nil {
		return nil, err
	}

	values := strings.Split(s, "\x00")
	for len(values) > 1 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}

	return &TextBody{Encoding: enc, Values: values}, nil
}

func decodeUserTextBody(body []byte, v Version) (FrameBody, error) {
	enc, rest, err := bodyEncoding(body, v)
	if err != nil {
		return nil, err
	}

	parts := splitNull(rest, enc, 2)
	if len(parts) != 2 {
		return nil, errors.New("user text frame without description terminator")
	}

	desc, err := enc.decodeText(parts[0])
	if err != nil {
		return nil, err
	}
	text, err := enc.decodeText(parts[1])
	if err != nil {
		return nil, err
	}

	return &UserTextBody{Encoding: enc, Description: desc, Text: text}, nil
}

func decodeURLBody(body []byte) (FrameBody, error) {
	url, err := EncodingISO88591.decodeText(bytes.TrimRight(body, "\x00"))
	if err != nil {
		return nil, err
	}

	return &URLBody{URL: url}, nil
}

func decodeUserURLBody(body []byte, v Version) (FrameBody, error) {
	enc, rest, err := bodyEncoding(body, v)
	if err != nil {
		return nil, err
	}

	parts := splitNull(rest, enc, 2)
	if len(parts) != 2 {
		return nil, errors.New("user URL frame without description terminator")
	}

	desc, err := enc.decodeText(parts[0])
	if err != nil {
		return nil, err
	}
	url, err := EncodingISO88591.decodeText(bytes.TrimRight(parts[1], "\x00"))
	if err != nil {
		return nil, err
	}

	return &UserURLBody{Encoding: enc, Description: desc, URL: url}, nil
}

type languageDescribed struct {
	enc  Encoding
	lang string
	desc string
	text string
}

func decodeLanguageDescribed(body []byte, v Version) (languageDescribed, error) {
	enc, rest, err := bodyEncoding(body, v)
	if err != nil {
		return languageDescribed{}, err
	}
	if len(rest) < 3 {
		return languageDescribed{}, errors.New("body shorter than its language field")
	}

	out := languageDescribed{enc: enc, lang: string(rest[:3])}

	parts := splitNull(rest[3:], enc, 2)
	if len(parts) != 2 {
		return languageDescribed{}, errors.New("missing description terminator")
	}

	if out.desc, err = enc.decodeText(parts[0]); err != nil {
		return languageDescribed{}, err
	}
	if out.text, err = enc.decodeText(parts[1]); err != nil {
		return languageDescribed{}, err
	}

	return out, nil
}

func decodePictureBody(body []byte, v Version) (FrameBody, error) {
	enc, rest, err := bodyEncoding(body, v)
	if err != nil {
		return nil, err
	}

	pic := &PictureBody{Encoding: enc}

	if v == V22 {
		if len(rest) < 4 {
			return nil, errors.New("picture body shorter than its fixed fields")
		}
		pic.MIMEType = mimeForImageFormat(string(rest[:3]))
		pic.PictureType = PictureType(rest[3])
		rest = rest[4:]
	} else {
		parts := bytes.SplitN(rest, []byte{0}, 2)
		if len(parts) != 2 || len(parts[1]) < 1 {
			return nil, errors.New("picture body without MIME terminator")
		}
		if pic.MIMEType, err = EncodingISO88591.decodeText(parts[0]); err != nil {
			return nil, err
		}
		pic.PictureType = PictureType(parts[1][0])
		rest = parts[1][1:]
	}

	parts := splitNull(rest, enc, 2)
	if len(parts) != 2 {
		return nil, errors.New("picture body without description terminator")
	}
	if pic.Description, err = enc.decodeText(parts[0]); err != nil {
		return nil, err
	}
	pic.Data = append([]byte(nil), parts[1]...)

	return pic, nil
}

func decodePopularimeterBody(body []byte) (FrameBody, error) {
	parts := bytes.SplitN(body, []byte{0}, 2)
	if len(parts) != 2 || len(parts[1]) < 1 {
		return nil, errors.New("popularimeter body without email terminator")
	}

	email, err := EncodingISO88591.decodeText(parts[0])
	if err != nil {
		return nil, err
	}

	return &PopularimeterBody{
		Email:  email,
		Rating: parts[1][0],
		Count:  decodeUint(parts[1][1:]),
	}, nil
}

func decodeUniqueFileIDBody(body []byte) (FrameBody, error) {
	parts := bytes.SplitN(body, []byte{0}, 2)
	if len(parts) != 2 {
		return nil, errors.New("unique file identifier body without owner terminator")
	}

	owner, err := EncodingISO88591.decodeText(parts[0])
	if err != nil {
		return nil, err
	}

	return &UniqueFileIDBody{
		Owner:      owner,
		Identifier: append([]byte(nil), parts[1]...),
	}, nil
}

// readFrames drives decodeFrame across the tag's payload. It never aborts
// the overall read: empty and corrupt frames are counted and skipped,
// padding and invalid identifiers end the stream, truncation keeps
// whatever was assembled. A tolerant loop is the point: one damaged frame
// must not discard a file's remaining metadata.
func (t *Tag) readFrames(data []byte) {
	desc := t.Version.desc()

	offset := 0
	for offset < len(data) {
		frame, n, err := decodeFrame(data[offset:], t.Version)
		if err == nil {
			t.addDecodedFrame(frame)
			offset += n
			continue
		}

		var invalidID InvalidIdentifierError
		var corrupt CorruptFrameError

		switch {
		case errors.Is(err, errPadding):
			logger.Debug().Int("offset", offset).Int("remaining", len(data)-offset).
				Msg("found padding, no more frames")
			return
		case errors.Is(err, errEmptyFrame):
			logger.Warn().Int("offset", offset).Msg("empty frame")
			t.EmptyFrameBytes += desc.frameHeaderLen()
			offset += n
		case errors.As(err, &invalidID):
			logger.Warn().Str("id", invalidID.ID).Int("offset", offset).
				Msg("invalid frame identifier, stopping")
			t.InvalidFrames++
			return
		case errors.As(err, &corrupt):
			logger.Warn().Str("id", corrupt.ID).Err(corrupt.Err).Msg("corrupt frame")
			t.InvalidFrames++
			offset += n
		default: // truncation
			logger.Warn().Int("offset", offset).Msg("unexpected end of frame data")
			t.InvalidFrames++
			return
		}
	}
}
