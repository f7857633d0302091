package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input has no valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for bit depths other than 16.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when the format chunk is unusable.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
