// Package zip loads .pptx containers with archive/zip.
package zip

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/pptxtract"
)

// Ensure Loader implements pptxtract.ArchiveLoader.
var _ pptxtract.ArchiveLoader = (*Loader)(nil)

// Loader reads zip containers held in memory.
type Loader struct {
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger that receives the cause of load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new Loader. Without WithLogger, load failures are
// reported to slog.Default().
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load indexes the entries of the archive in data. Entry content is not
// decompressed until requested.
// The cause of a failed load is logged and replaced by an ELOAD error.
func (l *Loader) Load(ctx context.Context, data []byte) (pptxtract.Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		l.logger.Error("load archive", "bytes", len(data), "err", err)
		return nil, pptxtract.Errorf(pptxtract.ELOAD, "failed to load .pptx file")
	}

	archive := make(pptxtract.Archive, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		archive[f.Name] = &Entry{file: f}
	}
	return archive, nil
}

// Ensure Entry implements pptxtract.ArchiveEntry.
var _ pptxtract.ArchiveEntry = (*Entry)(nil)

// Entry is a single file inside a loaded archive.
type Entry struct {
	file *zip.File
}

// Name returns the entry path.
func (e *Entry) Name() string {
	return e.file.Name
}

// Text decompresses the entry and returns it as UTF-8 text. Invalid
// byte sequences are replaced with U+FFFD.
func (e *Entry) Text() (string, error) {
	b, err := e.read()
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "\uFFFD"), nil
}

// Base64 decompresses the entry and returns it base64 encoded.
func (e *Entry) Base64() (string, error) {
	b, err := e.read()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (e *Entry) read() ([]byte, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
