package pptxtract

import "context"

// PlaceholderUnknown is the slide content type used when a shape carries
// no placeholder type.
const PlaceholderUnknown = "unknown"

// SlideContent holds the text of one shape on a slide.
type SlideContent struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Text []string `json:"text"`
}

// ParsedSlide is the structured content extracted from one slide entry.
type ParsedSlide struct {
	Name    string          `json:"name"`
	Content []*SlideContent `json:"content"`

	// MediaNames lists raw media reference tokens found in the slide XML.
	// They are not resolved against the archive and may repeat.
	MediaNames []string `json:"mediaNames"`
}

// ParsedMedia is a media entry encoded as a data URI.
type ParsedMedia struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ParsedNote is the undecoded text of a notes entry.
type ParsedNote struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ParsedPptx aggregates everything extracted from one document.
type ParsedPptx struct {
	Slides []*ParsedSlide `json:"slides"`
	Media  []*ParsedMedia `json:"media"`
	Notes  []*ParsedNote  `json:"notes"`
}

// SlideParser maps the XML of a slide entry to structured content.
type SlideParser interface {
	// ParseSlide decodes and parses the entry. Shapes or text missing from
	// the XML produce empty content, never an error.
	// Returns EINVALID if the entry is not well-formed XML.
	ParseSlide(ctx context.Context, entry ArchiveEntry) (*ParsedSlide, error)
}

// Extractor extracts content from .pptx files on disk.
type Extractor interface {
	// ExtractPptx extracts slides, media and notes.
	ExtractPptx(ctx context.Context, path string) (*ParsedPptx, error)

	// ExtractSlides extracts slides only.
	ExtractSlides(ctx context.Context, path string) ([]*ParsedSlide, error)

	// ExtractMedia extracts media only.
	ExtractMedia(ctx context.Context, path string) ([]*ParsedMedia, error)

	// ExtractNotes extracts notes only.
	ExtractNotes(ctx context.Context, path string) ([]*ParsedNote, error)
}

// ResultStore persists extraction results with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ResultStore interface {
	Save(ctx context.Context, result *ParsedPptx) error
	Commit() error
	Abort() error
}
