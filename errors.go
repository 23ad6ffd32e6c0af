package romfs

import "errors"

// Sentinel errors for image decoding and construction.
//
// Every error is terminal for the operation that returned it; the package
// never retries and never panics on malformed input.
var (
	// ErrInvalidMagicHeader is returned when the image does not start with Magic.
	ErrInvalidMagicHeader = errors.New("romfs: invalid magic header")

	// ErrWrongSize is returned when the header's total size field does not
	// equal the length of the supplied buffer.
	ErrWrongSize = errors.New("romfs: image size mismatch")

	// ErrUnknownVersion is returned when the format version tag is not recognized.
	ErrUnknownVersion = errors.New("romfs: unknown format version")

	// ErrBufferTooSmall is returned when a buffer is too short for the
	// record being read, or too short to hold the image being constructed.
	ErrBufferTooSmall = errors.New("romfs: buffer too small")

	// ErrFilenameTooLong is returned when an entry name encodes to more
	// than MaxFilenameLen bytes of UTF-8.
	ErrFilenameTooLong = errors.New("romfs: filename too long")

	// ErrNonUnicodeFilename is returned when a stored name field is not valid UTF-8.
	ErrNonUnicodeFilename = errors.New("romfs: filename is not valid UTF-8")

	// ErrSink is returned when the destination writer fails during
	// construction. The writer's own error is attached and can be
	// recovered with errors.Is and errors.As.
	ErrSink = errors.New("romfs: sink write failed")
)
