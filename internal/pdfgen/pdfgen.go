// Package pdfgen wraps a raster image as a single-page PDF so photographed
// notes can travel through the same PDF pipeline as real documents. The
// produced page carries no text layer; extracting it yields empty content by
// design, which downstream treats as the signal for a separate OCR path.
package pdfgen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

// FromImage decodes imageBytes (PNG, JPEG, or GIF) and returns a one-page
// PDF with the image drawn across the page's client area. The document model
// is released on every exit path.
func FromImage(imageBytes []byte) ([]byte, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: format}
	doc.RegisterImageOptionsReader("upload", opts, bytes.NewReader(imageBytes))
	if doc.Err() {
		err := doc.Error()
		doc.Close()
		return nil, fmt.Errorf("register image: %w", err)
	}

	pageW, pageH := doc.GetPageSize()
	left, top, right, bottom := doc.GetMargins()
	doc.ImageOptions("upload", left, top, pageW-left-right, pageH-top-bottom, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}
