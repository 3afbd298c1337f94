// Package pptxtest builds synthetic .pptx archives for tests.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// File is one entry of a synthetic archive.
type File struct {
	Name string
	Body string
}

// Build returns the bytes of a zip archive holding files in order.
func Build(tb testing.TB, files ...File) []byte {
	tb.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f.Name)
		if err != nil {
			tb.Fatalf("create %s: %v", f.Name, err)
		}
		if _, err := fw.Write([]byte(f.Body)); err != nil {
			tb.Fatalf("write %s: %v", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// Write builds an archive and stores it as name in a temporary directory.
// It returns the file path.
func Write(tb testing.TB, name string, files ...File) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, Build(tb, files...), 0644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}

const slideHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`

// Slide returns slide XML whose shape tree holds the given shapes.
func Slide(shapes ...string) string {
	return slideHeader + `<p:cSld><p:spTree>` + strings.Join(shapes, "") + `</p:spTree></p:cSld></p:sld>`
}

// Shape returns the XML of a text shape. An empty id omits the cNvPr
// element, an empty phType omits the placeholder marker. Each paragraph
// is a list of run texts.
func Shape(id, phType string, paragraphs ...[]string) string {
	var b strings.Builder
	b.WriteString(`<p:sp><p:nvSpPr>`)
	if id != "" {
		b.WriteString(`<p:cNvPr id="` + id + `" name="Shape ` + id + `"/>`)
	}
	b.WriteString(`<p:cNvSpPr/><p:nvPr>`)
	if phType != "" {
		b.WriteString(`<p:ph type="` + phType + `"/>`)
	}
	b.WriteString(`</p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/>`)
	for _, runs := range paragraphs {
		b.WriteString(`<a:p>`)
		for _, r := range runs {
			b.WriteString(`<a:r><a:rPr lang="en-US"/><a:t>` + r + `</a:t></a:r>`)
		}
		b.WriteString(`</a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

// Rels returns a relationships part pointing at the given media files.
func Rels(media ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i, m := range media {
		b.WriteString(`<Relationship Id="rId` + strconv.Itoa(i+2) + `"` +
			` Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"` +
			` Target="../media/` + m + `"/>`)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// Note returns notes slide XML with a single text paragraph.
func Note(text string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + text +
		`</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:notes>`
}
