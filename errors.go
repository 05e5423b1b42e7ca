package id3v2

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTag is returned by Decode when the buffer does not start with
	// an ID3v2 tag signature.
	ErrNoTag = errors.New("no ID3v2 tag found")

	// ErrValueTooLarge is returned when a size exceeds the syncsafe range
	// and therefore cannot be written.
	ErrValueTooLarge = errors.New("value exceeds syncsafe range")

	// errPadding signals that the frame stream has reached padding. Not an
	// error in the caller-visible sense; parsing stops cleanly.
	errPadding = errors.New("padding reached")

	// errEmptyFrame signals a frame with a declared size of zero. The
	// frame is skipped and parsing continues.
	errEmptyFrame = errors.New("empty frame")

	// errTruncated signals that the buffer ended in the middle of a frame
	// header or body. Parsing aborts with the frames assembled so far.
	errTruncated = errors.New("unexpected end of frame data")
)

// InvalidIdentifierError reports a frame identifier that is letter-like
// but not a well-formed frame code. Parsing cannot safely resynchronize
// past it, so the frame stream stops.
type InvalidIdentifierError struct {
	ID string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid frame identifier %q", e.ID)
}

// CorruptFrameError reports a frame whose header parsed but whose body
// failed format checks. The declared size is still trusted for skipping,
// so parsing continues with the next frame.
type CorruptFrameError struct {
	ID  string
	Err error
}

func (e CorruptFrameError) Error() string {
	return fmt.Sprintf("corrupt %s frame: %v", e.ID, e.Err)
}

func (e CorruptFrameError) Unwrap() error { return e.Err }

// UnsupportedFieldError reports a generic key that has no frame mapping
// in the tag's version.
type UnsupportedFieldError struct {
	Key     GenericKey
	Version Version
}

func (e UnsupportedFieldError) Error() string {
	return fmt.Sprintf("field %s is not supported by %s", e.Key, e.Version)
}

// FieldDataInvalidError reports a value that failed a frame body's
// validation rules.
type FieldDataInvalidError struct {
	Reason string
}

func (e FieldDataInvalidError) Error() string {
	return "invalid field data: " + e.Reason
}
