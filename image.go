package romfs

import (
	"bytes"
	"encoding/binary"
	"iter"
	"unicode/utf8"
)

// Image provides read access to a ROMFS image held in memory.
//
// An Image aliases the buffer passed to New. The buffer must not be
// modified while the Image or any Entry produced from it is in use;
// nothing is copied, and entry contents are subslices of the buffer.
// Concurrent readers are safe because nothing is ever mutated.
type Image struct {
	entries []byte // image bytes after the fixed header
}

// New validates data as a complete ROMFS image and mounts it.
//
// The buffer must hold exactly one image: the header's total size field has
// to equal len(data), otherwise New fails with ErrWrongSize. A truncated
// header fails with ErrBufferTooSmall, a bad signature with
// ErrInvalidMagicHeader and an unrecognized version tag with
// ErrUnknownVersion.
func New(data []byte) (*Image, error) {
	if len(data) < versionOffset {
		return nil, ErrBufferTooSmall
	}
	if string(data[magicOffset:versionOffset]) != Magic {
		return nil, ErrInvalidMagicHeader
	}
	if len(data) < totalOffset {
		return nil, ErrBufferTooSmall
	}
	if !bytes.Equal(data[versionOffset:totalOffset], version100[:]) {
		return nil, ErrUnknownVersion
	}
	if len(data) < HeaderSize {
		return nil, ErrBufferTooSmall
	}
	total := binary.BigEndian.Uint32(data[totalOffset:])
	if uint64(total) != uint64(len(data)) {
		return nil, ErrWrongSize
	}
	return &Image{entries: data[HeaderSize:]}, nil
}

// Entries returns an iterator over the entries in the image.
//
// Each call starts a fresh walk from the first entry; iterating does not
// consume or mutate the Image. The walk stops cleanly when the image is
// exhausted. A trailing entry whose declared size exceeds the bytes
// actually present is silently dropped: a truncated image yields every
// complete entry before the cut. A metadata record that cannot be decoded
// yields its error once and ends the walk; the stream is never
// resynchronized past corruption.
//
// Yielded entries alias the image buffer; see Image.
func (img *Image) Entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		rest := img.entries
		for len(rest) > 0 {
			meta, err := parseMetadata(rest)
			if err != nil {
				yield(Entry{}, err)
				return
			}
			rest = rest[MetadataSize:]
			if uint64(meta.FileSize) > uint64(len(rest)) {
				// Truncated image: drop the partial entry.
				return
			}
			entry := Entry{
				Metadata: meta,
				Contents: rest[:meta.FileSize:meta.FileSize],
			}
			rest = rest[meta.FileSize:]
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Find returns the first entry whose name equals name exactly.
//
// Records that fail to decode are skipped. The format permits duplicate
// names; the first match wins. The lookup is a linear scan.
func (img *Image) Find(name string) (Entry, bool) {
	for entry, err := range img.Entries() {
		if err != nil {
			continue
		}
		if entry.Metadata.FileName == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// Len returns the number of decodable entries in the image.
func (img *Image) Len() int {
	n := 0
	for _, err := range img.Entries() {
		if err == nil {
			n++
		}
	}
	return n
}

// parseMetadata decodes one metadata record from the front of data.
//
// The whole 14-byte name field must be valid UTF-8; the logical name is the
// text before the trailing NUL padding.
func parseMetadata(data []byte) (EntryMetadata, error) {
	if len(data) < MetadataSize {
		return EntryMetadata{}, ErrBufferTooSmall
	}
	name := data[nameOffset : nameOffset+MaxFilenameLen]
	if !utf8.Valid(name) {
		return EntryMetadata{}, ErrNonUnicodeFilename
	}
	return EntryMetadata{
		FileName: string(bytes.TrimRight(name, "\x00")),
		FileSize: binary.BigEndian.Uint32(data[sizeOffset:]),
		Ctime: Time{
			YearsSince1970: data[ctimeOffset],
			Month0:         data[ctimeOffset+1],
			Day0:           data[ctimeOffset+2],
			Hours:          data[ctimeOffset+3],
			Minutes:        data[ctimeOffset+4],
			Seconds:        data[ctimeOffset+5],
		},
	}, nil
}
