package pptxtract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PartKind identifies one of the entry groups extracted from a document.
type PartKind string

// PartKind constants.
const (
	PartSlide PartKind = "slide"
	PartMedia PartKind = "media"
	PartNote  PartKind = "note"
)

// Unnumbered is the sort key of entries whose name carries no sequence
// number. They sort after every numbered entry.
const Unnumbered = math.MaxInt64

type partLayout struct {
	prefix  string
	pattern *regexp.Regexp
}

var partLayouts = map[PartKind]partLayout{
	PartSlide: {
		prefix:  "ppt/slides/",
		pattern: regexp.MustCompile(`slide(\d+)\.xml(\.rels)?$`),
	},
	PartMedia: {
		prefix:  "ppt/media/",
		pattern: regexp.MustCompile(`(\d+)\.(jpg|jpeg|png|gif)$`),
	},
	PartNote: {
		prefix:  "ppt/notesSlides/",
		pattern: regexp.MustCompile(`notesSlide(\d+)\.xml(\.rels)?$`),
	},
}

// Prefix returns the archive path prefix of entries belonging to the kind.
func (k PartKind) Prefix() string {
	return partLayouts[k].prefix
}

// SortKey returns the sequence number embedded in name for the given kind,
// or Unnumbered if name does not match the kind's pattern.
func SortKey(kind PartKind, name string) int {
	layout, ok := partLayouts[kind]
	if !ok {
		return Unnumbered
	}
	m := layout.pattern.FindStringSubmatch(name)
	if m == nil {
		return Unnumbered
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Unnumbered
	}
	return n
}

// PartOptions adjusts how entries are selected into a group.
type PartOptions struct {
	// ExcludeRels drops relationship companions (paths ending in .rels).
	// They are kept by default because media references of a slide are
	// usually only found in its relationships part.
	ExcludeRels bool
}

// Part returns the entries of archive that belong to kind, ordered by
// their embedded sequence number. Entries sharing a key keep path order.
func Part(archive Archive, kind PartKind, opts PartOptions) []ArchiveEntry {
	prefix := kind.Prefix()
	if prefix == "" {
		return nil
	}

	type keyed struct {
		key   int
		entry ArchiveEntry
	}
	var parts []keyed
	for _, entry := range archive {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if opts.ExcludeRels && strings.HasSuffix(name, ".rels") {
			continue
		}
		parts = append(parts, keyed{key: SortKey(kind, name), entry: entry})
	}

	sort.Slice(parts, func(i, j int) bool {
		if parts[i].key != parts[j].key {
			return parts[i].key < parts[j].key
		}
		return parts[i].entry.Name() < parts[j].entry.Name()
	})

	entries := make([]ArchiveEntry, len(parts))
	for i, p := range parts {
		entries[i] = p.entry
	}
	return entries
}

// Parts holds the classified entry groups of a document.
type Parts struct {
	Slides []ArchiveEntry
	Media  []ArchiveEntry
	Notes  []ArchiveEntry
}

// Partition classifies archive into slides, media and notes.
func Partition(archive Archive, opts PartOptions) Parts {
	return Parts{
		Slides: Part(archive, PartSlide, opts),
		Media:  Part(archive, PartMedia, opts),
		Notes:  Part(archive, PartNote, opts),
	}
}
