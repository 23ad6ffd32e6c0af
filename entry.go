package romfs

// EntryMetadata is the fixed-size record describing one entry.
type EntryMetadata struct {
	// FileName is the entry's name: at most MaxFilenameLen bytes of UTF-8.
	// The format does not guarantee uniqueness; see Image.Find.
	FileName string

	// FileSize is the byte length of the contents following the record.
	FileSize uint32

	// Ctime is the creation time recorded for the entry.
	Ctime Time
}

// Entry is one logical file record: metadata plus its contents.
//
// Entries produced by decoding alias the image buffer — the Contents slice
// must be treated as immutable and must not outlive the buffer. Entries
// passed to Construct or ConstructInto may hold any byte slice; the encoder
// does not retain it after the call returns.
type Entry struct {
	Metadata EntryMetadata
	Contents []byte
}

// NewEntry builds an Entry whose metadata size matches its contents.
//
// The name is not validated here; Construct and ConstructInto reject names
// longer than MaxFilenameLen bytes.
func NewEntry(name string, ctime Time, contents []byte) Entry {
	return Entry{
		Metadata: EntryMetadata{
			FileName: name,
			FileSize: uint32(len(contents)),
			Ctime:    ctime,
		},
		Contents: contents,
	}
}
