package slog

import (
	"context"
	"log/slog"
)

type extractionKey struct{}

// WithExtraction returns a copy of ctx carrying the extraction id. Records
// written by the decorators in this package under ctx carry the id.
func WithExtraction(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, extractionKey{}, id)
}

// Extraction returns the extraction id carried by ctx, or "" if none.
func Extraction(ctx context.Context) string {
	id, _ := ctx.Value(extractionKey{}).(string)
	return id
}

// loggerFor returns logger annotated with the extraction id from ctx.
func loggerFor(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := Extraction(ctx); id != "" {
		return logger.With("extraction", id)
	}
	return logger
}
