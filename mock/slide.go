package mock

import (
	"context"

	"github.com/fwojciec/pptxtract"
)

var _ pptxtract.SlideParser = (*SlideParser)(nil)

// SlideParser is a mock implementation of pptxtract.SlideParser.
type SlideParser struct {
	ParseSlideFn func(ctx context.Context, entry pptxtract.ArchiveEntry) (*pptxtract.ParsedSlide, error)
}

func (p *SlideParser) ParseSlide(ctx context.Context, entry pptxtract.ArchiveEntry) (*pptxtract.ParsedSlide, error) {
	return p.ParseSlideFn(ctx, entry)
}
