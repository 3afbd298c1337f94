package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pptxtract"
)

// Ensure LoggingArchiveLoader implements pptxtract.ArchiveLoader.
var _ pptxtract.ArchiveLoader = (*LoggingArchiveLoader)(nil)

// LoggingArchiveLoader wraps an ArchiveLoader with logging.
type LoggingArchiveLoader struct {
	next   pptxtract.ArchiveLoader
	logger *slog.Logger
}

// NewLoggingArchiveLoader creates a new LoggingArchiveLoader.
func NewLoggingArchiveLoader(next pptxtract.ArchiveLoader, logger *slog.Logger) *LoggingArchiveLoader {
	return &LoggingArchiveLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingArchiveLoader) Load(ctx context.Context, data []byte) (archive pptxtract.Archive, err error) {
	defer func(begin time.Time) {
		loggerFor(ctx, l.logger).Info("archive load",
			"bytes", len(data),
			"entries", len(archive),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, data)
}
