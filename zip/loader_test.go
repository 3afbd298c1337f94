package zip_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/fwojciec/pptxtract"
	"github.com/fwojciec/pptxtract/internal/pptxtest"
	"github.com/fwojciec/pptxtract/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("indexes entries by path", func(t *testing.T) {
		t.Parallel()

		data := pptxtest.Build(t,
			pptxtest.File{Name: "ppt/slides/slide1.xml", Body: "<p:sld/>"},
			pptxtest.File{Name: "ppt/media/image1.png", Body: "\x89PNG"},
		)

		archive, err := zip.NewLoader().Load(context.Background(), data)

		require.NoError(t, err)
		require.Len(t, archive, 2)
		assert.Equal(t, "ppt/slides/slide1.xml", archive["ppt/slides/slide1.xml"].Name())
	})

	t.Run("skips directory entries", func(t *testing.T) {
		t.Parallel()

		data := pptxtest.Build(t,
			pptxtest.File{Name: "ppt/slides/"},
			pptxtest.File{Name: "ppt/slides/slide1.xml", Body: "<p:sld/>"},
		)

		archive, err := zip.NewLoader().Load(context.Background(), data)

		require.NoError(t, err)
		assert.Len(t, archive, 1)
	})

	t.Run("masks and logs the cause of a corrupt archive", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		loader := zip.NewLoader(zip.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		_, err := loader.Load(context.Background(), []byte("this is not a zip file"))

		require.Error(t, err)
		assert.Equal(t, pptxtract.ELOAD, pptxtract.ErrorCode(err))
		assert.Equal(t, "failed to load .pptx file", pptxtract.ErrorMessage(err))
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "load archive")
		assert.Contains(t, buf.String(), "err=")
	})

	t.Run("does not load under a cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := zip.NewLoader().Load(ctx, pptxtest.Build(t, pptxtest.File{Name: "ppt/slides/slide1.xml", Body: "<p:sld/>"}))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEntry(t *testing.T) {
	t.Parallel()

	payload := "\x89PNG\r\n\x1a\n"
	data := pptxtest.Build(t,
		pptxtest.File{Name: "ppt/notesSlides/notesSlide1.xml", Body: "<p:notes>héllo</p:notes>"},
		pptxtest.File{Name: "ppt/media/image1.png", Body: payload},
		pptxtest.File{Name: "ppt/slides/slide1.xml", Body: "ok\xffok"},
	)
	archive, err := zip.NewLoader().Load(context.Background(), data)
	require.NoError(t, err)

	t.Run("decodes text", func(t *testing.T) {
		t.Parallel()

		text, err := archive["ppt/notesSlides/notesSlide1.xml"].Text()

		require.NoError(t, err)
		assert.Equal(t, "<p:notes>héllo</p:notes>", text)
	})

	t.Run("replaces invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		text, err := archive["ppt/slides/slide1.xml"].Text()

		require.NoError(t, err)
		assert.Equal(t, "ok�ok", text)
	})

	t.Run("decodes binary as base64", func(t *testing.T) {
		t.Parallel()

		encoded, err := archive["ppt/media/image1.png"].Base64()

		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte(payload)), encoded)
	})
}
