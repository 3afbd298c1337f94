package pptxtract

import "strings"

// ParseMedia encodes a media entry as a data URI. The MIME major type is
// always image; the subtype is the lowercased file extension.
func ParseMedia(entry ArchiveEntry) (*ParsedMedia, error) {
	payload, err := entry.Base64()
	if err != nil {
		return nil, err
	}
	return &ParsedMedia{
		Name:    entry.Name(),
		Content: "data:image/" + MediaType(entry.Name()) + ";base64," + payload,
	}, nil
}

// MediaType returns the lowercased extension of the base file name of
// name, or "unknown" if it has none.
func MediaType(name string) string {
	fileName := name
	if i := strings.LastIndex(name, "/"); i >= 0 && i < len(name)-1 {
		fileName = name[i+1:]
	}
	i := strings.LastIndex(fileName, ".")
	if i < 0 || i == len(fileName)-1 {
		return "unknown"
	}
	return strings.ToLower(fileName[i+1:])
}
