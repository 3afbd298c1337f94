package pptxtract

import (
	"fmt"
	"strings"
)

// FormatSlides formats slides as a readable outline.
// Each text line is prefixed with its shape id and placeholder type.
// Slides are separated by blank lines.
func FormatSlides(slides []*ParsedSlide) string {
	if len(slides) == 0 {
		return ""
	}

	parts := make([]string, 0, len(slides))
	for _, slide := range slides {
		var b strings.Builder
		b.WriteString("## Slide: " + slide.Name)
		for _, c := range slide.Content {
			for _, line := range c.Text {
				fmt.Fprintf(&b, "\n[%s %s] %s", c.ID, c.Type, line)
			}
		}
		if len(slide.MediaNames) > 0 {
			b.WriteString("\nMedia: " + strings.Join(slide.MediaNames, ", "))
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatMedia lists media entries with the size of their data URI.
func FormatMedia(media []*ParsedMedia) string {
	if len(media) == 0 {
		return ""
	}

	lines := make([]string, 0, len(media))
	for _, m := range media {
		lines = append(lines, fmt.Sprintf("## Media: %s (%d bytes)", m.Name, len(m.Content)))
	}
	return strings.Join(lines, "\n")
}

// FormatNotes formats notes with their raw content.
func FormatNotes(notes []*ParsedNote) string {
	if len(notes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, "## Note: "+n.Name+"\n"+n.Content)
	}
	return strings.Join(parts, "\n\n")
}

// FormatPptx formats a full extraction result, skipping empty groups.
func FormatPptx(result *ParsedPptx) string {
	if result == nil {
		return ""
	}

	var parts []string
	for _, s := range []string{
		FormatSlides(result.Slides),
		FormatMedia(result.Media),
		FormatNotes(result.Notes),
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}
