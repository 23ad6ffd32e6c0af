package romfs

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"slices"
	"strings"
	"time"
)

// Interface compliance.
var (
	_ fs.FS         = (*Image)(nil)
	_ fs.StatFS     = (*Image)(nil)
	_ fs.ReadFileFS = (*Image)(nil)
	_ fs.ReadDirFS  = (*Image)(nil)
)

// Open implements fs.FS.
//
// The namespace is flat: "." is the only directory and every entry sits
// directly under it. Duplicate names resolve to the first occurrence, the
// same as Image.Find. The returned file reads the borrowed contents slice
// in place and also implements io.ReaderAt and io.Seeker.
func (img *Image) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return &rootDir{img: img}, nil
	}
	entry, ok := img.Find(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &entryFile{
		Reader: bytes.NewReader(entry.Contents),
		meta:   entry.Metadata,
	}, nil
}

// Stat implements fs.StatFS without reading file contents.
func (img *Image) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return dirInfo{}, nil
	}
	entry, ok := img.Find(name)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fileInfo{meta: entry.Metadata}, nil
}

// ReadFile implements fs.ReadFileFS.
//
// Unlike Find, the returned slice is a copy, per the fs.ReadFileFS contract
// that callers may modify it.
func (img *Image) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	entry, ok := img.Find(name)
	if !ok {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrNotExist}
	}
	return bytes.Clone(entry.Contents), nil
}

// ReadDir implements fs.ReadDirFS.
//
// Only "." has entries. Listings are sorted by name and keep the first
// occurrence of a duplicated name, matching lookup semantics. A corrupt
// metadata record surfaces as the listing error.
func (img *Image) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	if name != "." {
		if _, ok := img.Find(name); ok {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
		}
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	entries := make([]fs.DirEntry, 0)
	for entry, err := range img.Entries() {
		if err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
		}
		if seen[entry.Metadata.FileName] {
			continue
		}
		seen[entry.Metadata.FileName] = true
		entries = append(entries, fs.FileInfoToDirEntry(fileInfo{meta: entry.Metadata}))
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// entryFile adapts a decoded entry to fs.File. The embedded bytes.Reader
// reads the borrowed contents directly; nothing is copied.
type entryFile struct {
	*bytes.Reader
	meta EntryMetadata
}

func (f *entryFile) Stat() (fs.FileInfo, error) { return fileInfo{meta: f.meta}, nil }
func (f *entryFile) Close() error               { return nil }

// fileInfo exposes entry metadata as fs.FileInfo.
type fileInfo struct {
	meta EntryMetadata
}

func (fi fileInfo) Name() string       { return fi.meta.FileName }
func (fi fileInfo) Size() int64        { return int64(fi.meta.FileSize) }
func (fi fileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi fileInfo) ModTime() time.Time { return fi.meta.Ctime.Std() }
func (fi fileInfo) IsDir() bool        { return false }
func (fi fileInfo) Sys() any           { return fi.meta }

// dirInfo is the synthetic info for the root directory. The format stores
// no directory records, so there is nothing real to report.
type dirInfo struct{}

func (dirInfo) Name() string       { return "." }
func (dirInfo) Size() int64        { return 0 }
func (dirInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o555 }
func (dirInfo) ModTime() time.Time { return time.Time{} }
func (dirInfo) IsDir() bool        { return true }
func (dirInfo) Sys() any           { return nil }

// rootDir implements fs.ReadDirFile for ".".
type rootDir struct {
	img     *Image
	entries []fs.DirEntry
	loaded  bool
}

func (d *rootDir) Read(_ []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: ".", Err: fs.ErrInvalid}
}

func (d *rootDir) Stat() (fs.FileInfo, error) { return dirInfo{}, nil }
func (d *rootDir) Close() error               { return nil }

func (d *rootDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if !d.loaded {
		entries, err := d.img.ReadDir(".")
		if err != nil {
			return nil, err
		}
		d.entries = entries
		d.loaded = true
	}

	if n <= 0 {
		out := d.entries
		d.entries = nil
		return out, nil
	}
	if len(d.entries) == 0 {
		return nil, io.EOF
	}
	if n > len(d.entries) {
		n = len(d.entries)
	}
	out := d.entries[:n]
	d.entries = d.entries[n:]
	return out, nil
}
