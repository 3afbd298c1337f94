package etree

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/beevik/etree"
)

// documentJSON renders doc as a JSON object keyed by the root tag. Each
// element becomes an object holding its attributes under "$", its child
// elements grouped by tag in order of first appearance, and its text under
// "_". An element with neither attributes nor children is its text alone.
// Every attribute and text value is therefore a quoted JSON string.
func documentJSON(doc *etree.Document) (string, error) {
	w := newJSONWriter()
	w.raw('{')
	if root := doc.Root(); root != nil {
		w.str(root.FullTag())
		w.raw(':')
		w.element(root)
	}
	w.raw('}')
	return w.buf.String(), w.err
}

type jsonWriter struct {
	buf bytes.Buffer
	enc *json.Encoder
	err error
}

func newJSONWriter() *jsonWriter {
	w := &jsonWriter{}
	w.enc = json.NewEncoder(&w.buf)
	w.enc.SetEscapeHTML(false)
	return w
}

func (w *jsonWriter) raw(c byte) {
	w.buf.WriteByte(c)
}

// str writes s as a JSON string.
func (w *jsonWriter) str(s string) {
	if w.err != nil {
		return
	}
	if w.err = w.enc.Encode(s); w.err == nil {
		// Encode terminates every value with a newline.
		w.buf.Truncate(w.buf.Len() - 1)
	}
}

func (w *jsonWriter) element(el *etree.Element) {
	text := elementText(el)
	children := el.ChildElements()
	if len(el.Attr) == 0 && len(children) == 0 {
		w.str(text)
		return
	}

	w.raw('{')
	first := true
	key := func(k string) {
		if !first {
			w.raw(',')
		}
		first = false
		w.str(k)
		w.raw(':')
	}

	if len(el.Attr) > 0 {
		key("$")
		w.raw('{')
		for i, a := range el.Attr {
			if i > 0 {
				w.raw(',')
			}
			w.str(a.FullKey())
			w.raw(':')
			w.str(a.Value)
		}
		w.raw('}')
	}

	var tags []string
	groups := make(map[string][]*etree.Element)
	for _, c := range children {
		tag := c.FullTag()
		if _, ok := groups[tag]; !ok {
			tags = append(tags, tag)
		}
		groups[tag] = append(groups[tag], c)
	}
	for _, tag := range tags {
		key(tag)
		w.raw('[')
		for i, c := range groups[tag] {
			if i > 0 {
				w.raw(',')
			}
			w.element(c)
		}
		w.raw(']')
	}

	if text != "" {
		key("_")
		w.str(text)
	}
	w.raw('}')
}

// elementText concatenates the character data directly inside el.
// Whitespace-only text is dropped.
func elementText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return ""
	}
	return b.String()
}
