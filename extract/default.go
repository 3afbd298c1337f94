package extract

import (
	"context"

	"github.com/fwojciec/pptxtract"
)

// ExtractPptx extracts slides, media and notes from the file at path
// using a default Extractor.
func ExtractPptx(ctx context.Context, path string) (*pptxtract.ParsedPptx, error) {
	return New().ExtractPptx(ctx, path)
}

// ExtractSlides extracts slides from the file at path using a default Extractor.
func ExtractSlides(ctx context.Context, path string) ([]*pptxtract.ParsedSlide, error) {
	return New().ExtractSlides(ctx, path)
}

// ExtractMedia extracts media from the file at path using a default Extractor.
func ExtractMedia(ctx context.Context, path string) ([]*pptxtract.ParsedMedia, error) {
	return New().ExtractMedia(ctx, path)
}

// ExtractNotes extracts notes from the file at path using a default Extractor.
func ExtractNotes(ctx context.Context, path string) ([]*pptxtract.ParsedNote, error) {
	return New().ExtractNotes(ctx, path)
}
