// Package etree parses slide XML with github.com/beevik/etree.
package etree

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pptxtract"
)

// Ensure SlideParser implements pptxtract.SlideParser.
var _ pptxtract.SlideParser = (*SlideParser)(nil)

// SlideParser extracts shape text from PresentationML slide parts.
type SlideParser struct{}

// NewSlideParser creates a new SlideParser.
func NewSlideParser() *SlideParser {
	return &SlideParser{}
}

// ParseSlide decodes the entry, walks the slide shape tree and collects the
// text of every shape that has an id. Media references are scanned from the
// JSON rendering of the document, so relationship parts yield their media
// targets and a reference inside text ends with that text.
func (p *SlideParser) ParseSlide(_ context.Context, entry pptxtract.ArchiveEntry) (*pptxtract.ParsedSlide, error) {
	xml, err := entry.Text()
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, pptxtract.Errorf(pptxtract.EINVALID, "parse %s: %v", entry.Name(), err)
	}

	serialized, err := documentJSON(doc)
	if err != nil {
		return nil, pptxtract.Errorf(pptxtract.EINTERNAL, "serialize %s: %v", entry.Name(), err)
	}

	content := []*pptxtract.SlideContent{}
	for _, shape := range shapes(doc) {
		if c := parseShape(shape); c != nil {
			content = append(content, c)
		}
	}

	return &pptxtract.ParsedSlide{
		Name:       entry.Name(),
		Content:    content,
		MediaNames: pptxtract.ScanMediaReferences(serialized),
	}, nil
}

// shapes returns the direct p:sp children of the slide shape tree.
func shapes(doc *etree.Document) []*etree.Element {
	root := doc.Root()
	if root == nil || root.FullTag() != "p:sld" {
		return nil
	}
	tree := descend(root, "p:cSld", "p:spTree")
	if tree == nil {
		return nil
	}
	return tree.SelectElements("p:sp")
}

// parseShape returns the content of one shape, or nil if the shape has no
// id or no non-empty paragraph.
func parseShape(shape *etree.Element) *pptxtract.SlideContent {
	props := descend(shape, "p:nvSpPr", "p:cNvPr")
	if props == nil {
		return nil
	}
	id := props.SelectAttr("id")
	if id == nil {
		return nil
	}

	var texts []string
	for _, para := range selectAll(descend(shape, "p:txBody"), "a:p") {
		if text := paragraphText(para); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return nil
	}

	return &pptxtract.SlideContent{
		ID:   id.Value,
		Type: placeholderType(shape),
		Text: texts,
	}
}

// placeholderType returns the p:ph type of a shape or PlaceholderUnknown.
func placeholderType(shape *etree.Element) string {
	ph := descend(shape, "p:nvSpPr", "p:nvPr", "p:ph")
	if ph == nil {
		return pptxtract.PlaceholderUnknown
	}
	if typ := ph.SelectAttrValue("type", ""); typ != "" {
		return typ
	}
	return pptxtract.PlaceholderUnknown
}

// paragraphText joins the first a:t text of each run with single spaces.
// A run without a:t contributes an empty string.
func paragraphText(para *etree.Element) string {
	runs := para.SelectElements("a:r")
	texts := make([]string, len(runs))
	for i, run := range runs {
		if t := run.SelectElement("a:t"); t != nil {
			texts[i] = t.Text()
		}
	}
	return strings.Join(texts, " ")
}

// descend follows the child path tags from el and returns nil at the
// first missing link.
func descend(el *etree.Element, tags ...string) *etree.Element {
	for _, tag := range tags {
		if el == nil {
			return nil
		}
		el = el.SelectElement(tag)
	}
	return el
}

// selectAll is SelectElements that tolerates a nil parent.
func selectAll(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	return el.SelectElements(tag)
}
