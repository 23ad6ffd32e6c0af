// Package romfs encodes and decodes Neotron ROM Filing System (ROMFS)
// images: flat, read-only file containers designed to be baked into
// firmware images and mounted directly from memory.
//
// An image is a 16-byte header followed by a sequence of entries, each a
// fixed 24-byte metadata record immediately followed by the file contents.
// Decoding is zero-copy: entry contents alias the image buffer.
//
// # Quick Start
//
// Mount an image held in memory and walk its entries:
//
//	img, err := romfs.New(data)
//	if err != nil {
//	    return err
//	}
//	for entry, err := range img.Entries() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%s is %d bytes\n", entry.Metadata.FileName, entry.Metadata.FileSize)
//	}
//
// Open a specific file by name:
//
//	if entry, ok := img.Find("HELLO.ELF"); ok {
//	    data := entry.Contents
//	    _ = data
//	}
//
// Build an image from in-memory entries:
//
//	entries := []romfs.Entry{
//	    romfs.NewEntry("README.TXT", romfs.TimeFromStd(time.Now()), contents),
//	}
//	buf := make([]byte, romfs.SizeRequired(entries))
//	_, err := romfs.Construct(buf, entries)
//
// An Image also implements fs.FS and related interfaces for stdlib
// compatibility, treating the flat namespace as a single directory.
package romfs
