package id3v2

import "github.com/rs/zerolog"

// logger is silent unless a caller installs one. The codec only logs
// diagnostics (corrupt frames, dropped conversions, unknown flag bits);
// it never logs on the happy path of a clean tag.
var logger = zerolog.Nop()

// SetLogger installs the logger used for codec diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}
