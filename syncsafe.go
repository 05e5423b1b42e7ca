package id3v2

// Syncsafe integers store 7 significant bits per byte so that no byte of
// an encoded size ever reaches 0x80. The tag header's total size is always
// syncsafe; v2.4 frame sizes are too.

const syncsafeMax = 1<<28 - 1

func syncsafeDecode(b [4]byte) int {
	return int(b[0]&0x7f)<<21 | int(b[1]&0x7f)<<14 | int(b[2]&0x7f)<<7 | int(b[3]&0x7f)
}

func syncsafeEncode(v int) ([4]byte, error) {
	if v < 0 || v > syncsafeMax {
		return [4]byte{}, ErrValueTooLarge
	}

	return [4]byte{
		byte(v >> 21 & 0x7f),
		byte(v >> 14 & 0x7f),
		byte(v >> 7 & 0x7f),
		byte(v & 0x7f),
	}, nil
}

// encodeUint writes v as the fewest big-endian bytes that represent it,
// left-padded with zero bytes to reach minLength. minLength is clamped to
// [1, 8]; the zero value with minLength 1 encodes to a single zero byte.
// Play counters and popularimeter counts use this layout.
func encodeUint(v uint64, minLength int) []byte {
	if minLength < 1 {
		minLength = 1
	}
	if minLength > 8 {
		minLength = 8
	}

	size := 0
	for i, tmp := 1, v; i <= 8; i++ {
		if tmp&0xff != 0 {
			size = i
		}
		tmp >>= 8
	}
	if size < minLength {
		size = minLength
	}

	out := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		out[i] = byte(v & 0xff)
		v >>= 8
	}

	return out
}

// decodeUint reads all of b as an unsigned big-endian integer. Bytes past
// the eighth are ignored so a hostile length cannot overflow the shift.
func decodeUint(b []byte) uint64 {
	if len(b) > 8 {
		b = b[:8]
	}

	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}
