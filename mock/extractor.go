package mock

import (
	"context"

	"github.com/fwojciec/pptxtract"
)

var _ pptxtract.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pptxtract.Extractor.
type Extractor struct {
	ExtractPptxFn   func(ctx context.Context, path string) (*pptxtract.ParsedPptx, error)
	ExtractSlidesFn func(ctx context.Context, path string) ([]*pptxtract.ParsedSlide, error)
	ExtractMediaFn  func(ctx context.Context, path string) ([]*pptxtract.ParsedMedia, error)
	ExtractNotesFn  func(ctx context.Context, path string) ([]*pptxtract.ParsedNote, error)
}

func (e *Extractor) ExtractPptx(ctx context.Context, path string) (*pptxtract.ParsedPptx, error) {
	return e.ExtractPptxFn(ctx, path)
}

func (e *Extractor) ExtractSlides(ctx context.Context, path string) ([]*pptxtract.ParsedSlide, error) {
	return e.ExtractSlidesFn(ctx, path)
}

func (e *Extractor) ExtractMedia(ctx context.Context, path string) ([]*pptxtract.ParsedMedia, error) {
	return e.ExtractMediaFn(ctx, path)
}

func (e *Extractor) ExtractNotes(ctx context.Context, path string) ([]*pptxtract.ParsedNote, error) {
	return e.ExtractNotesFn(ctx, path)
}
