// Package replacement decodes the replacement list emitted by clang-format
// when run with --output-replacements-xml.
package replacement

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
)

// Marker is the text whose presence signals at least one proposed replacement.
const Marker = "replacement offset"

// Replacement is a single edit the formatter would apply: Length bytes
// starting at Offset are replaced with Text.
type Replacement struct {
	Offset int64
	Length int64
	Text   string
}

// List is a decoded replacement document. Replacements keep emission order.
type List struct {
	Incomplete   bool
	Replacements []Replacement
}

type xmlReplacement struct {
	Offset *uint64 `xml:"offset,attr"`
	Length *uint64 `xml:"length,attr"`
	Text   string  `xml:",chardata"`
}

type xmlReplacements struct {
	XMLName    xml.Name         `xml:"replacements"`
	Incomplete bool             `xml:"incomplete_format,attr"`
	Items      []xmlReplacement `xml:"replacement"`
}

// HasReplacements reports whether the raw formatter output proposes any edit.
// It mirrors the check done before any XML decoding takes place, so output
// without the marker is conformant even if it is not a replacement document.
func HasReplacements(out []byte) bool {
	return bytes.Contains(out, []byte(Marker))
}

// Parse decodes formatter output into a List.
func Parse(out []byte) (*List, error) {
	dec := xml.NewDecoder(bytes.NewReader(out))
	var doc xmlReplacements
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Reason: "cannot decode document", Wrapped: err}
	}
	if err := expectEnd(dec); err != nil {
		return nil, err
	}

	list := &List{
		Incomplete:   doc.Incomplete,
		Replacements: make([]Replacement, 0, len(doc.Items)),
	}
	for i, item := range doc.Items {
		r, err := item.convert()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("replacement %d", i+1), Wrapped: err}
		}
		list.Replacements = append(list.Replacements, r)
	}
	return list, nil
}

// expectEnd consumes the rest of the document. Only whitespace, comments and
// processing instructions may follow the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &ParseError{Reason: "cannot decode document", Wrapped: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		case xml.Comment, xml.ProcInst:
			continue
		}
		return &ParseError{Reason: "content after the replacements element"}
	}
}

func (x xmlReplacement) convert() (Replacement, error) {
	if x.Offset == nil {
		return Replacement{}, fmt.Errorf("missing offset attribute")
	}
	if x.Length == nil {
		return Replacement{}, fmt.Errorf("missing length attribute")
	}
	offset, err := safecast.Conv[int64](*x.Offset)
	if err != nil {
		return Replacement{}, fmt.Errorf("offset: %w", err)
	}
	length, err := safecast.Conv[int64](*x.Length)
	if err != nil {
		return Replacement{}, fmt.Errorf("length: %w", err)
	}
	return Replacement{Offset: offset, Length: length, Text: x.Text}, nil
}
