package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// forEachElementText streams XML tokens from data and calls fn with the
// concatenated inner text of every element accepted by match, in document
// order. fn returns true to stop the walk early, which bounds work on
// adversarially large documents. Malformed XML surfaces as the decoder's
// error.
func forEachElementText(data []byte, match func(xml.Name) bool, fn func(text string) (stop bool)) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0 // nesting depth inside the currently matched element
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 {
				depth++
			} else if match(t.Name) {
				depth = 1
				buf.Reset()
			}
		case xml.EndElement:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && fn(buf.String()) {
				return nil
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		}
	}
}

// matchesQualified accepts elements whose local name matches local and whose
// namespace is either the given prefix (undeclared namespaces resolve to
// their literal prefix) or a declared namespace URI containing nsHint.
func matchesQualified(local, prefix, nsHint string) func(xml.Name) bool {
	return func(n xml.Name) bool {
		if n.Local != local {
			return false
		}
		return n.Space == prefix || strings.Contains(n.Space, nsHint)
	}
}
