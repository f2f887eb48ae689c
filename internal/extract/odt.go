package extract

import (
	"strings"

	"github.com/notewise/docingest/internal/truncate"
)

// odt paragraphs are text:p elements inside content.xml.
var odtParagraph = matchesQualified("p", "text", "opendocument:xmlns:text")

// extractODT reads the OpenDocument container: the single required entry
// content.xml, joining paragraphs with a blank line and skipping paragraphs
// that trim to nothing.
func extractODT(data []byte) (Result, error) {
	return extractContainer(data, containerSpec{
		format:        "ODT",
		marker:        truncate.ODTMarker,
		requiredEntry: "content.xml",
		walkEntry: func(content []byte, acc *truncate.Accumulator) error {
			return forEachElementText(content, odtParagraph, func(text string) bool {
				para := strings.TrimSpace(text)
				if para == "" {
					return false
				}
				return acc.Add(para + "\n\n")
			})
		},
		emptyMessage: "No text content found in ODT file",
	})
}
