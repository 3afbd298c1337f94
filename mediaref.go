package pptxtract

import "strings"

const mediaRefMarker = "media/"

// ScanMediaReferences returns the text following every occurrence of
// "media/" in s, up to the next double quote or the end of s.
// Matches are returned in order of appearance, duplicates included.
// The result is never nil.
func ScanMediaReferences(s string) []string {
	refs := []string{}
	for from := 0; ; {
		i := strings.Index(s[from:], mediaRefMarker)
		if i < 0 {
			return refs
		}
		start := from + i + len(mediaRefMarker)
		end := strings.IndexByte(s[start:], '"')
		if end < 0 {
			refs = append(refs, s[start:])
		} else {
			refs = append(refs, s[start:start+end])
		}
		from = from + i + 1
	}
}
