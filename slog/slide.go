package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pptxtract"
)

// Ensure LoggingSlideParser implements pptxtract.SlideParser.
var _ pptxtract.SlideParser = (*LoggingSlideParser)(nil)

// LoggingSlideParser wraps a SlideParser with debug logging.
type LoggingSlideParser struct {
	next   pptxtract.SlideParser
	logger *slog.Logger
}

// NewLoggingSlideParser creates a new LoggingSlideParser.
func NewLoggingSlideParser(next pptxtract.SlideParser, logger *slog.Logger) *LoggingSlideParser {
	return &LoggingSlideParser{next: next, logger: logger}
}

// ParseSlide delegates to the wrapped parser and logs the shape and media
// counts at debug level.
func (p *LoggingSlideParser) ParseSlide(ctx context.Context, entry pptxtract.ArchiveEntry) (slide *pptxtract.ParsedSlide, err error) {
	defer func(begin time.Time) {
		var shapes, media int
		if slide != nil {
			shapes, media = len(slide.Content), len(slide.MediaNames)
		}
		loggerFor(ctx, p.logger).Debug("slide parse",
			"name", entry.Name(),
			"shapes", shapes,
			"media", media,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseSlide(ctx, entry)
}
