// Package pptxtract extracts slide text, speaker notes and embedded media
// from .pptx presentation documents.
//
// This package contains domain types, interfaces and the dependency-free
// parts of the extraction (entry classification, media and notes decoding)
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., zip/, etree/).
package pptxtract
