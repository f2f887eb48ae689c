package extract

import (
	"github.com/notewise/docingest/internal/truncate"
)

// docx text runs live in w:t elements inside word/document.xml.
var docxTextRun = matchesQualified("t", "w", "wordprocessingml")

// extractDOCX reads the Word container: the single required entry
// word/document.xml, concatenating every text run with a trailing space.
func extractDOCX(data []byte) (Result, error) {
	return extractContainer(data, containerSpec{
		format:        "DOCX",
		marker:        truncate.DOCXMarker,
		requiredEntry: "word/document.xml",
		walkEntry: func(content []byte, acc *truncate.Accumulator) error {
			return forEachElementText(content, docxTextRun, func(text string) bool {
				return acc.Add(text + " ")
			})
		},
		emptyMessage: "No text content found in DOCX file",
	})
}
