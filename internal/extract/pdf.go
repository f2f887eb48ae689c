package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"

	"github.com/notewise/docingest/internal/truncate"
)

// extractPDF opens the PDF structural model over the in-memory buffer and
// accumulates page text in ascending page order, stopping as soon as the
// length cap is exceeded. The reader is backed entirely by the byte slice and
// holds no OS resource, so nothing outlives this call.
//
// An empty result is the expected signal for scanned or image-only PDFs;
// no OCR happens here.
func extractPDF(data []byte) (Result, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Rewrapped by the dispatcher with the filename attached.
		return Result{}, err
	}

	var acc truncate.Accumulator
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// Pages with images only, or broken content streams.
			continue
		}
		if acc.Add(text) {
			break
		}
	}

	text, truncated := acc.Finish(truncate.PDFMarker)
	if text == "" {
		return Result{}, failf(KindEmptyContent, "No text content found in PDF")
	}
	return Result{Text: text, Truncated: truncated}, nil
}

// pdfPageCount opens the PDF only to read its page count.
func pdfPageCount(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}
