package pptxtract

import "context"

// ArchiveEntry is one named item inside a loaded .pptx container.
// Content is decompressed on demand by Text or Base64, never eagerly.
type ArchiveEntry interface {
	// Name returns the entry path inside the archive, e.g. ppt/slides/slide3.xml.
	Name() string

	// Text decodes the entry content as UTF-8 text.
	Text() (string, error)

	// Base64 decodes the entry content and returns it in standard base64 encoding.
	Base64() (string, error)
}

// Archive maps entry paths to their lazily decoded entries.
type Archive map[string]ArchiveEntry

// ArchiveLoader opens a zip-structured document container.
type ArchiveLoader interface {
	// Load reads the container held in data.
	// Returns ELOAD if data is not a readable archive.
	Load(ctx context.Context, data []byte) (Archive, error)
}
