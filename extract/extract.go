// Package extract orchestrates .pptx extraction. It reads the document,
// loads the archive, classifies its entries and decodes every group
// concurrently.
package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/pptxtract"
	"github.com/fwojciec/pptxtract/etree"
	"github.com/fwojciec/pptxtract/zip"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements pptxtract.Extractor.
var _ pptxtract.Extractor = (*Extractor)(nil)

// Extractor extracts slides, media and notes from .pptx files.
type Extractor struct {
	Loader pptxtract.ArchiveLoader
	Slides pptxtract.SlideParser

	// Concurrency limits the number of entries of one group decoded at the
	// same time. Zero or less means no limit.
	Concurrency int

	// ExcludeRels drops .rels companions from the slide and note groups.
	ExcludeRels bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConcurrency sets the per-group decode limit.
func WithConcurrency(n int) Option {
	return func(e *Extractor) {
		e.Concurrency = n
	}
}

// WithExcludeRels drops .rels companions from the slide and note groups.
func WithExcludeRels(exclude bool) Option {
	return func(e *Extractor) {
		e.ExcludeRels = exclude
	}
}

// WithLoader replaces the archive loader.
func WithLoader(loader pptxtract.ArchiveLoader) Option {
	return func(e *Extractor) {
		e.Loader = loader
	}
}

// WithSlideParser replaces the slide parser.
func WithSlideParser(parser pptxtract.SlideParser) Option {
	return func(e *Extractor) {
		e.Slides = parser
	}
}

// New returns an Extractor backed by the zip loader and the etree slide
// parser unless options replace them.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		Loader: zip.NewLoader(),
		Slides: etree.NewSlideParser(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPptx extracts slides, media and notes from the file at path.
// The three groups are decoded concurrently; the first failure aborts the
// whole extraction.
func (e *Extractor) ExtractPptx(ctx context.Context, path string) (*pptxtract.ParsedPptx, error) {
	archive, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}
	parts := pptxtract.Partition(archive, e.partOptions())

	result := &pptxtract.ParsedPptx{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Slides, err = parseAll(gctx, parts.Slides, e.Slides.ParseSlide, e.Concurrency)
		return err
	})
	g.Go(func() (err error) {
		result.Media, err = parseAll(gctx, parts.Media, withoutContext(pptxtract.ParseMedia), e.Concurrency)
		return err
	})
	g.Go(func() (err error) {
		result.Notes, err = parseAll(gctx, parts.Notes, withoutContext(pptxtract.ParseNote), e.Concurrency)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractSlides extracts slides from the file at path.
func (e *Extractor) ExtractSlides(ctx context.Context, path string) ([]*pptxtract.ParsedSlide, error) {
	archive, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}
	entries := pptxtract.Part(archive, pptxtract.PartSlide, e.partOptions())
	return parseAll(ctx, entries, e.Slides.ParseSlide, e.Concurrency)
}

// ExtractMedia extracts media from the file at path.
func (e *Extractor) ExtractMedia(ctx context.Context, path string) ([]*pptxtract.ParsedMedia, error) {
	archive, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}
	entries := pptxtract.Part(archive, pptxtract.PartMedia, e.partOptions())
	return parseAll(ctx, entries, withoutContext(pptxtract.ParseMedia), e.Concurrency)
}

// ExtractNotes extracts notes from the file at path.
func (e *Extractor) ExtractNotes(ctx context.Context, path string) ([]*pptxtract.ParsedNote, error) {
	archive, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}
	entries := pptxtract.Part(archive, pptxtract.PartNote, e.partOptions())
	return parseAll(ctx, entries, withoutContext(pptxtract.ParseNote), e.Concurrency)
}

func (e *Extractor) partOptions() pptxtract.PartOptions {
	return pptxtract.PartOptions{ExcludeRels: e.ExcludeRels}
}

// load reads the file at path and opens it as an archive.
func (e *Extractor) load(ctx context.Context, path string) (pptxtract.Archive, error) {
	if e.Loader == nil || e.Slides == nil {
		return nil, pptxtract.Errorf(pptxtract.EINTERNAL, "extractor requires a loader and a slide parser")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return e.Loader.Load(ctx, data)
}

// parseAll decodes entries concurrently and returns results in entry order.
// The first error cancels decodes that have not started yet and is returned
// without partial results.
func parseAll[T any](ctx context.Context, entries []pptxtract.ArchiveEntry, parse func(context.Context, pptxtract.ArchiveEntry) (T, error), limit int) ([]T, error) {
	results := make([]T, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := parse(gctx, entry)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// withoutContext adapts a decoder that never blocks to the parseAll signature.
func withoutContext[T any](parse func(pptxtract.ArchiveEntry) (T, error)) func(context.Context, pptxtract.ArchiveEntry) (T, error) {
	return func(_ context.Context, entry pptxtract.ArchiveEntry) (T, error) {
		return parse(entry)
	}
}
