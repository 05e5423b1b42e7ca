package id3v2

// Unsynchronization is a reversible byte-stuffing transform. A zero byte
// is inserted after every 0xFF that is either followed by a byte with its
// high bit set or is the last byte of the buffer, so no sequence in tag
// data can be mistaken for an MPEG audio sync pattern.

// requiresUnsynchronization reports whether b contains a false sync:
// 0xFF followed by a byte >= 0xE0, or a trailing 0xFF.
func requiresUnsynchronization(b []byte) bool {
	for i, c := range b {
		if c != 0xff {
			continue
		}
		if i == len(b)-1 {
			return true
		}
		if b[i+1] >= 0xe0 {
			return true
		}
	}

	return false
}

// unsynchronize applies the transform. A genuine 0xFF 0x00 pair must be
// stuffed as well, otherwise synchronize would swallow the real zero.
// It never shrinks its input.
func unsynchronize(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i, c := range b {
		out = append(out, c)
		if c != 0xff {
			continue
		}
		if i == len(b)-1 || b[i+1] >= 0x80 || b[i+1] == 0 {
			out = append(out, 0)
		}
	}

	return out
}

// synchronize reverses unsynchronize: a zero byte immediately following
// 0xFF is removed.
func synchronize(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xff && i+1 < len(b) && b[i+1] == 0 {
			i++
		}
	}

	return out
}
