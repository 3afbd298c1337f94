package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pptxtract"
	"github.com/fwojciec/pptxtract/mock"
	ptslog "github.com/fwojciec/pptxtract/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingArchiveLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs size and entry count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveLoader{
			LoadFn: func(_ context.Context, data []byte) (pptxtract.Archive, error) {
				return mock.Archive(mock.TextEntry("ppt/slides/slide1.xml", "")), nil
			},
		}

		loader := ptslog.NewLoggingArchiveLoader(inner, logger)
		archive, err := loader.Load(context.Background(), []byte("zipdata"))

		require.NoError(t, err)
		assert.Len(t, archive, 1)
		output := buf.String()
		assert.Contains(t, output, "archive load")
		assert.Contains(t, output, "bytes=7")
		assert.Contains(t, output, "entries=1")
	})

	t.Run("logs load error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArchiveLoader{
			LoadFn: func(_ context.Context, data []byte) (pptxtract.Archive, error) {
				return nil, pptxtract.Errorf(pptxtract.ELOAD, "failed to load .pptx file")
			},
		}

		loader := ptslog.NewLoggingArchiveLoader(inner, logger)
		_, err := loader.Load(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, pptxtract.ELOAD, pptxtract.ErrorCode(err))
		assert.Contains(t, buf.String(), "entries=0")
		assert.Contains(t, buf.String(), "failed to load .pptx file")
	})
}
