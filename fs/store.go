// Package fs provides file-based storage for extraction results.
package fs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pptxtract"
)

// Ensure FileStore implements pptxtract.ResultStore at compile time.
var _ pptxtract.ResultStore = (*FileStore)(nil)

// ManifestName is the name of the manifest written next to the extracted files.
const ManifestName = "manifest.json"

// Manifest lists every file written by a FileStore.
type Manifest struct {
	Files []ManifestFile `json:"files"`
}

// ManifestFile describes one extracted entry. Media entries whose content
// was already written point at the first copy.
type ManifestFile struct {
	Source string `json:"source"`
	Path   string `json:"path"`
	Hash   string `json:"hash"`
	Size   int    `json:"size"`
}

// FileStore implements pptxtract.ResultStore with atomic update semantics.
// Results are saved to a temporary directory, then moved on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes slides as JSON, notes as raw text and media as decoded
// bytes, followed by the manifest.
func (s *FileStore) Save(ctx context.Context, result *pptxtract.ParsedPptx) error {
	if result == nil {
		return pptxtract.Errorf(pptxtract.EINVALID, "result required")
	}

	var manifest Manifest

	for _, slide := range result.Slides {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := json.MarshalIndent(slide, "", "  ")
		if err != nil {
			return err
		}
		f, err := s.write(pptxtract.PartSlide, slide.Name, ".json", b)
		if err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, f)
	}

	for _, note := range result.Notes {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := s.write(pptxtract.PartNote, note.Name, "", []byte(note.Content))
		if err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, f)
	}

	written := make(map[string]string)
	for _, media := range result.Media {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := DecodeDataURI(media.Content)
		if err != nil {
			return fmt.Errorf("decode %s: %w", media.Name, err)
		}
		hash := HashContent(b)
		if path, ok := written[hash]; ok {
			manifest.Files = append(manifest.Files, ManifestFile{
				Source: media.Name,
				Path:   path,
				Hash:   hash,
				Size:   len(b),
			})
			continue
		}
		f, err := s.write(pptxtract.PartMedia, media.Name, "", b)
		if err != nil {
			return err
		}
		written[hash] = f.Path
		manifest.Files = append(manifest.Files, f)
	}

	b, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), ManifestName), b, 0644)
}

// write stores content under the directory of kind, keeping the entry path
// below the kind prefix.
func (s *FileStore) write(kind pptxtract.PartKind, name, ext string, content []byte) (ManifestFile, error) {
	relPath, err := EntryPath(kind, name)
	if err != nil {
		return ManifestFile{}, err
	}
	relPath += ext

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return ManifestFile{}, err
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return ManifestFile{}, err
	}

	return ManifestFile{
		Source: name,
		Path:   filepath.ToSlash(relPath),
		Hash:   HashContent(content),
		Size:   len(content),
	}, nil
}

// Commit replaces the final directory with the saved results.
func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards saved results.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// EntryPath converts an archive entry name to a relative output path.
// Example: ppt/slides/_rels/slide1.xml.rels → slides/_rels/slide1.xml.rels
// Names that would escape the output directory are rejected.
func EntryPath(kind pptxtract.PartKind, name string) (string, error) {
	dir := map[pptxtract.PartKind]string{
		pptxtract.PartSlide: "slides",
		pptxtract.PartMedia: "media",
		pptxtract.PartNote:  "notes",
	}[kind]
	if dir == "" {
		return "", pptxtract.Errorf(pptxtract.EINVALID, "unknown part kind %q", kind)
	}

	rel := strings.TrimPrefix(name, kind.Prefix())
	if rel == "" || !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", pptxtract.Errorf(pptxtract.EINVALID, "unsafe entry name %q", name)
	}
	return filepath.Join(dir, filepath.FromSlash(rel)), nil
}

// DecodeDataURI returns the payload of a base64 data URI.
func DecodeDataURI(uri string) ([]byte, error) {
	const marker = ";base64,"
	if !strings.HasPrefix(uri, "data:") {
		return nil, pptxtract.Errorf(pptxtract.EINVALID, "not a data URI")
	}
	i := strings.Index(uri, marker)
	if i < 0 {
		return nil, pptxtract.Errorf(pptxtract.EINVALID, "data URI is not base64 encoded")
	}
	return base64.StdEncoding.DecodeString(uri[i+len(marker):])
}

// HashContent computes the xxHash of content as a hex string.
func HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
