package romfs

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SizeRequired returns the exact byte length of the image Construct and
// ConstructInto would produce from entries.
func SizeRequired(entries []Entry) int {
	size := HeaderSize
	for i := range entries {
		size += MetadataSize + len(entries[i].Contents)
	}
	return size
}

// Construct serializes entries into buf as a complete image and returns the
// number of bytes written, which always equals SizeRequired(entries).
//
// Entries are written in input order; names are neither deduplicated nor
// reordered. Construct is all-or-nothing: if buf is shorter than
// SizeRequired it fails with ErrBufferTooSmall, and if any name is longer
// than MaxFilenameLen bytes it fails with ErrFilenameTooLong, in both cases
// without writing anything.
func Construct(buf []byte, entries []Entry) (int, error) {
	total := SizeRequired(entries)
	if len(buf) < total {
		return 0, ErrBufferTooSmall
	}
	if err := checkNames(entries); err != nil {
		return 0, err
	}
	return writeImage(&sliceWriter{buf: buf}, total, entries)
}

// ConstructInto serializes entries to w as a complete image and returns the
// number of bytes written.
//
// The header's total size field is always the true image size, regardless
// of destination. Names are validated before the first write, so a
// ErrFilenameTooLong failure writes nothing. Any failure of w itself is
// surfaced as ErrSink with the writer's error attached.
func ConstructInto(w io.Writer, entries []Entry) (int, error) {
	if err := checkNames(entries); err != nil {
		return 0, err
	}
	return writeImage(w, SizeRequired(entries), entries)
}

func checkNames(entries []Entry) error {
	for i := range entries {
		if len(entries[i].Metadata.FileName) > MaxFilenameLen {
			return ErrFilenameTooLong
		}
	}
	return nil
}

// writeImage writes the header and every entry. Names must already be
// validated.
func writeImage(w io.Writer, total int, entries []Entry) (int, error) {
	var hdr [HeaderSize]byte
	copy(hdr[magicOffset:], Magic)
	copy(hdr[versionOffset:], version100[:])
	binary.BigEndian.PutUint32(hdr[totalOffset:], uint32(total))

	used, err := writeAll(w, hdr[:])
	if err != nil {
		return used, err
	}
	for i := range entries {
		n, err := writeMetadata(w, &entries[i])
		used += n
		if err != nil {
			return used, err
		}
		n, err = writeAll(w, entries[i].Contents)
		used += n
		if err != nil {
			return used, err
		}
	}
	return used, nil
}

// writeMetadata encodes one metadata record. The size field is derived from
// the contents, keeping the length invariant true by construction.
func writeMetadata(w io.Writer, e *Entry) (int, error) {
	var rec [MetadataSize]byte
	copy(rec[nameOffset:nameOffset+MaxFilenameLen], e.Metadata.FileName)
	binary.BigEndian.PutUint32(rec[sizeOffset:], uint32(len(e.Contents)))
	ct := e.Metadata.Ctime
	rec[ctimeOffset] = ct.YearsSince1970
	rec[ctimeOffset+1] = ct.Month0
	rec[ctimeOffset+2] = ct.Day0
	rec[ctimeOffset+3] = ct.Hours
	rec[ctimeOffset+4] = ct.Minutes
	rec[ctimeOffset+5] = ct.Seconds
	return writeAll(w, rec[:])
}

// writeAll surfaces any sink failure as ErrSink with the cause attached.
func writeAll(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrSink, err)
	}
	if n < len(p) {
		return n, fmt.Errorf("%w: %w", ErrSink, io.ErrShortWrite)
	}
	return n, nil
}

// sliceWriter appends into a fixed, pre-sized buffer. Construct checks the
// buffer length up front, so writes never run short.
type sliceWriter struct {
	buf []byte
	off int
}

func (s *sliceWriter) Write(p []byte) (int, error) {
	n := copy(s.buf[s.off:], p)
	s.off += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
