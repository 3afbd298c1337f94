package slog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/pptxtract"
	"github.com/fwojciec/pptxtract/mock"
	ptslog "github.com/fwojciec/pptxtract/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_ExtractPptx(t *testing.T) {
	t.Parallel()

	t.Run("logs group counts, duration and extraction id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractPptxFn: func(ctx context.Context, path string) (*pptxtract.ParsedPptx, error) {
				return &pptxtract.ParsedPptx{
					Slides: []*pptxtract.ParsedSlide{{Name: "a"}, {Name: "b"}},
					Media:  []*pptxtract.ParsedMedia{{Name: "c"}},
					Notes:  []*pptxtract.ParsedNote{},
				}, nil
			},
		}

		ex := ptslog.NewLoggingExtractor(inner, logger)
		result, err := ex.ExtractPptx(context.Background(), "deck.pptx")

		require.NoError(t, err)
		assert.Len(t, result.Slides, 2)
		output := buf.String()
		assert.Contains(t, output, "extract pptx")
		assert.Contains(t, output, "path=deck.pptx")
		assert.Contains(t, output, "slides=2")
		assert.Contains(t, output, "media=1")
		assert.Contains(t, output, "notes=0")
		assert.Contains(t, output, "extraction=")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractPptxFn: func(ctx context.Context, path string) (*pptxtract.ParsedPptx, error) {
				return nil, errors.New("archive broken")
			},
		}

		ex := ptslog.NewLoggingExtractor(inner, logger)
		_, err := ex.ExtractPptx(context.Background(), "deck.pptx")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "slides=0")
		assert.Contains(t, output, "err=\"archive broken\"")
	})
}

func TestLoggingExtractor_Groups(t *testing.T) {
	t.Parallel()

	inner := &mock.Extractor{
		ExtractSlidesFn: func(ctx context.Context, path string) ([]*pptxtract.ParsedSlide, error) {
			return []*pptxtract.ParsedSlide{{Name: "a"}}, nil
		},
		ExtractMediaFn: func(ctx context.Context, path string) ([]*pptxtract.ParsedMedia, error) {
			return []*pptxtract.ParsedMedia{{Name: "a"}, {Name: "b"}}, nil
		},
		ExtractNotesFn: func(ctx context.Context, path string) ([]*pptxtract.ParsedNote, error) {
			return nil, errors.New("bad note")
		},
	}

	t.Run("logs slide count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ex := ptslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := ex.ExtractSlides(context.Background(), "deck.pptx")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "extract slides")
		assert.Contains(t, buf.String(), "count=1")
	})

	t.Run("logs media count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ex := ptslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := ex.ExtractMedia(context.Background(), "deck.pptx")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "extract media")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs note failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ex := ptslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := ex.ExtractNotes(context.Background(), "deck.pptx")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "extract notes")
		assert.Contains(t, buf.String(), "count=0")
		assert.Contains(t, buf.String(), "err=\"bad note\"")
	})
}

// records decodes the JSON log lines in buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggingExtractor_CorrelatesRecords(t *testing.T) {
	t.Parallel()

	t.Run("tags loader and parser records with the call extraction id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		loader := ptslog.NewLoggingArchiveLoader(&mock.ArchiveLoader{
			LoadFn: func(_ context.Context, _ []byte) (pptxtract.Archive, error) {
				return mock.Archive(mock.TextEntry("ppt/slides/slide1.xml", "")), nil
			},
		}, logger)
		parser := ptslog.NewLoggingSlideParser(&mock.SlideParser{
			ParseSlideFn: func(_ context.Context, entry pptxtract.ArchiveEntry) (*pptxtract.ParsedSlide, error) {
				return &pptxtract.ParsedSlide{Name: entry.Name()}, nil
			},
		}, logger)
		inner := &mock.Extractor{
			ExtractSlidesFn: func(ctx context.Context, _ string) ([]*pptxtract.ParsedSlide, error) {
				archive, err := loader.Load(ctx, []byte("zip"))
				if err != nil {
					return nil, err
				}
				slide, err := parser.ParseSlide(ctx, archive["ppt/slides/slide1.xml"])
				if err != nil {
					return nil, err
				}
				return []*pptxtract.ParsedSlide{slide}, nil
			},
		}
		ex := ptslog.NewLoggingExtractor(inner, logger)

		_, err := ex.ExtractSlides(context.Background(), "deck.pptx")
		require.NoError(t, err)
		_, err = ex.ExtractSlides(context.Background(), "deck.pptx")
		require.NoError(t, err)

		recs := records(t, &buf)
		require.Len(t, recs, 6)
		assert.Equal(t, "archive load", recs[0]["msg"])
		assert.Equal(t, "slide parse", recs[1]["msg"])
		assert.Equal(t, "extract slides", recs[2]["msg"])

		first, ok := recs[0]["extraction"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, first)
		assert.Equal(t, first, recs[1]["extraction"])
		assert.Equal(t, first, recs[2]["extraction"])

		second := recs[3]["extraction"]
		assert.NotEqual(t, first, second)
		assert.Equal(t, second, recs[5]["extraction"])
	})

	t.Run("keeps an extraction id already on the context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var seen string
		inner := &mock.Extractor{
			ExtractNotesFn: func(ctx context.Context, _ string) ([]*pptxtract.ParsedNote, error) {
				seen = ptslog.Extraction(ctx)
				return nil, nil
			},
		}
		ex := ptslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := ex.ExtractNotes(ptslog.WithExtraction(context.Background(), "job-7"), "deck.pptx")

		require.NoError(t, err)
		assert.Equal(t, "job-7", seen)
		assert.Contains(t, buf.String(), "extraction=job-7")
	})
}

func TestLoggingArchiveLoader_OmitsExtractionWithoutID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	loader := ptslog.NewLoggingArchiveLoader(&mock.ArchiveLoader{
		LoadFn: func(_ context.Context, _ []byte) (pptxtract.Archive, error) {
			return pptxtract.Archive{}, nil
		},
	}, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := loader.Load(context.Background(), nil)

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "extraction=")
}
