package mock

import (
	"context"

	"github.com/fwojciec/pptxtract"
)

var _ pptxtract.ArchiveLoader = (*ArchiveLoader)(nil)

// ArchiveLoader is a mock implementation of pptxtract.ArchiveLoader.
type ArchiveLoader struct {
	LoadFn func(ctx context.Context, data []byte) (pptxtract.Archive, error)
}

func (l *ArchiveLoader) Load(ctx context.Context, data []byte) (pptxtract.Archive, error) {
	return l.LoadFn(ctx, data)
}

var _ pptxtract.ArchiveEntry = (*ArchiveEntry)(nil)

// ArchiveEntry is a mock implementation of pptxtract.ArchiveEntry.
type ArchiveEntry struct {
	NameValue string
	TextFn    func() (string, error)
	Base64Fn  func() (string, error)
}

func (e *ArchiveEntry) Name() string {
	return e.NameValue
}

func (e *ArchiveEntry) Text() (string, error) {
	return e.TextFn()
}

func (e *ArchiveEntry) Base64() (string, error) {
	return e.Base64Fn()
}

// TextEntry returns an ArchiveEntry named name whose Text returns text.
func TextEntry(name, text string) *ArchiveEntry {
	return &ArchiveEntry{
		NameValue: name,
		TextFn:    func() (string, error) { return text, nil },
	}
}

// Archive builds an Archive from entries keyed by their names.
func Archive(entries ...*ArchiveEntry) pptxtract.Archive {
	archive := make(pptxtract.Archive, len(entries))
	for _, e := range entries {
		archive[e.NameValue] = e
	}
	return archive
}
