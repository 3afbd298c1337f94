package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pptxtract"
	"github.com/google/uuid"
)

// Ensure LoggingExtractor implements pptxtract.Extractor.
var _ pptxtract.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Every call is tagged
// with an extraction id that is also passed down the context, so the
// loader and slide parser decorators of the same call log the same id.
type LoggingExtractor struct {
	next   pptxtract.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pptxtract.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPptx delegates to the wrapped extractor and logs group counts.
func (e *LoggingExtractor) ExtractPptx(ctx context.Context, path string) (result *pptxtract.ParsedPptx, err error) {
	ctx = e.begin(ctx)
	defer func(begin time.Time) {
		var slides, media, notes int
		if result != nil {
			slides, media, notes = len(result.Slides), len(result.Media), len(result.Notes)
		}
		loggerFor(ctx, e.logger).Info("extract pptx",
			"path", path,
			"slides", slides,
			"media", media,
			"notes", notes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPptx(ctx, path)
}

// ExtractSlides delegates to the wrapped extractor and logs the slide count.
func (e *LoggingExtractor) ExtractSlides(ctx context.Context, path string) (slides []*pptxtract.ParsedSlide, err error) {
	ctx = e.begin(ctx)
	defer e.logGroup(ctx, "extract slides", path, func() int { return len(slides) }, &err)(time.Now())
	return e.next.ExtractSlides(ctx, path)
}

// ExtractMedia delegates to the wrapped extractor and logs the media count.
func (e *LoggingExtractor) ExtractMedia(ctx context.Context, path string) (media []*pptxtract.ParsedMedia, err error) {
	ctx = e.begin(ctx)
	defer e.logGroup(ctx, "extract media", path, func() int { return len(media) }, &err)(time.Now())
	return e.next.ExtractMedia(ctx, path)
}

// ExtractNotes delegates to the wrapped extractor and logs the note count.
func (e *LoggingExtractor) ExtractNotes(ctx context.Context, path string) (notes []*pptxtract.ParsedNote, err error) {
	ctx = e.begin(ctx)
	defer e.logGroup(ctx, "extract notes", path, func() int { return len(notes) }, &err)(time.Now())
	return e.next.ExtractNotes(ctx, path)
}

// begin tags ctx with a new extraction id unless it already carries one.
func (e *LoggingExtractor) begin(ctx context.Context) context.Context {
	if Extraction(ctx) != "" {
		return ctx
	}
	return WithExtraction(ctx, uuid.New().String())
}

func (e *LoggingExtractor) logGroup(ctx context.Context, msg, path string, count func() int, err *error) func(time.Time) {
	return func(begin time.Time) {
		loggerFor(ctx, e.logger).Info(msg,
			"path", path,
			"count", count(),
			"duration", time.Since(begin),
			"err", *err,
		)
	}
}
