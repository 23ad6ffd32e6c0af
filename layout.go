package romfs

// Wire geometry for the ROMFS container. Field order and widths are part of
// the format contract; all multi-byte integers are big-endian.
const (
	// Magic is the 8-byte signature at the start of every image.
	Magic = "NeoROMFS"

	// HeaderSize is the encoded size of the image header in bytes.
	HeaderSize = 16

	// MetadataSize is the encoded size of one entry's metadata record.
	MetadataSize = 24

	// MaxFilenameLen is the maximum encoded length of an entry name,
	// in bytes of UTF-8. Shorter names are NUL-padded on the wire.
	MaxFilenameLen = 14
)

// Header field offsets.
const (
	magicOffset   = 0
	versionOffset = magicOffset + len(Magic)
	versionLen    = 4
	totalOffset   = versionOffset + versionLen
)

// Metadata field offsets.
const (
	nameOffset  = 0
	sizeOffset  = nameOffset + MaxFilenameLen
	ctimeOffset = sizeOffset + 4
)

// version100 is the only format version tag this package recognizes.
// Any other tag, including ones that might be newer, is rejected.
var version100 = [versionLen]byte{0x00, 0x01, 0x00, 0x00}
