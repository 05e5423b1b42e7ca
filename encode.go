package id3v2

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// encodeFrame serializes one frame for the given version: identifier,
// size field, flags (v2.3/v2.4), body. The size field never includes the
// frame header.
func encodeFrame(f Frame, v Version) ([]byte, error) {
	desc := v.desc()

	if len(f.ID) != desc.idLen {
		return nil, fmt.Errorf("frame identifier %q is not %d characters", f.ID, desc.idLen)
	}

	body, err := f.Body.encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", f.ID, err)
	}
	if len(body) > desc.maxFrameSize() {
		return nil, fmt.Errorf("frame %s: %w", f.ID, ErrValueTooLarge)
	}

	out := make([]byte, 0, desc.frameHeaderLen()+len(body))
	out = append(out, f.ID...)

	if desc.syncsafeSize {
		size, err := syncsafeEncode(len(body))
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", f.ID, err)
		}
		out = append(out, size[:]...)
	} else {
		for i := desc.sizeLen - 1; i >= 0; i-- {
			out = append(out, byte(len(body)>>(8*i)))
		}
	}

	if desc.flagsLen == 2 {
		out = binary.BigEndian.AppendUint16(out, uint16(f.Flags))
	}

	return append(out, body...), nil
}

// Write serializes the tag into a byte buffer ready for the host writer
// to splice into the file in place of the old tag region.
//
// Frames are written in the version's preferred order, not in read order.
// When the unsynchronization policy is enabled and the frame data
// contains a false sync pattern, the unsynchronization transform is
// applied and flagged in the header. Padding fills the previous on-disk
// slot when the frames still fit it; otherwise Options.Padding is
// appended.
func (t *Tag) Write() ([]byte, error) {
	var body bytes.Buffer
	for _, id := range t.FrameIDs() {
		for _, f := range t.frames[id] {
			b, err := encodeFrame(f, t.Version)
			if err != nil {
				return nil, err
			}
			body.Write(b)
		}
	}

	raw := body.Bytes()

	unsync := t.Options.Unsync && requiresUnsynchronization(raw)
	if unsync {
		before := len(raw)
		raw = unsynchronize(raw)
		logger.Debug().Int("before", before).Int("after", len(raw)).
			Msg("unsynchronized frame data")
	}

	padding := t.paddingFor(len(raw))

	size, err := syncsafeEncode(len(raw) + padding)
	if err != nil {
		return nil, fmt.Errorf("tag size: %w", err)
	}

	var flags HeaderFlags
	if unsync {
		flags |= 0x80
	}

	out := make([]byte, 0, tagHeaderLen+len(raw)+padding)
	out = append(out, tagMagic...)
	out = append(out, byte(t.Version), 0, byte(flags))
	out = append(out, size[:]...)
	out = append(out, raw...)
	out = append(out, make([]byte, padding)...)

	return out, nil
}

// paddingFor sizes the padding so a tag that still fits its previous
// on-disk slot reuses it exactly, avoiding a file rewrite.
func (t *Tag) paddingFor(bodyLen int) int {
	if t.declaredSize >= bodyLen {
		return t.declaredSize - bodyLen
	}

	return t.Options.Padding
}
