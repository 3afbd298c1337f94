package pptxtract

// ParseNote returns the text of a notes entry as is.
func ParseNote(entry ArchiveEntry) (*ParsedNote, error) {
	content, err := entry.Text()
	if err != nil {
		return nil, err
	}
	return &ParsedNote{Name: entry.Name(), Content: content}, nil
}
