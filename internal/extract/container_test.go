package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/notewise/docingest/internal/truncate"
)

type zipEntry struct {
	name    string
	content string
}

func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("write zip entry %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

func docxDocument(runs ...string) string {
	var b strings.Builder
	b.WriteString(docxHeader)
	b.WriteString("<w:p>")
	for _, r := range runs {
		b.WriteString("<w:r><w:t>")
		b.WriteString(r)
		b.WriteString("</w:t></w:r>")
	}
	b.WriteString("</w:p></w:body></w:document>")
	return b.String()
}

func TestExtract_DOCXSpaceJoinedRuns(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"[Content_Types].xml", "<Types/>"},
		{"word/document.xml", docxDocument("Hello ", "World")},
	})
	res, err := Extract(Source{Data: data, Extension: "docx", FileName: "c.docx"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Hello  World" {
		t.Fatalf("expected space-joined runs %q, got %q", "Hello  World", res.Text)
	}
}

func TestExtract_DocRoutedLikeDocx(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"word/document.xml", docxDocument("Legacy", "path")},
	})
	res, err := Extract(Source{Data: data, Extension: "doc", FileName: "c.doc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Legacy") {
		t.Fatalf("expected doc to route through docx extractor, got %q", res.Text)
	}
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	data := buildZip(t, []zipEntry{{"word/styles.xml", "<w:styles/>"}})
	_, err := Extract(Source{Data: data, Extension: "docx", FileName: "m.docx"})
	if KindOf(err) != KindMissingEntry {
		t.Fatalf("expected MissingEntry, got %v (%v)", KindOf(err), err)
	}
	if err.Error() != "Invalid DOCX file: document.xml not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestExtract_DOCXInvalidArchive(t *testing.T) {
	_, err := Extract(Source{Data: []byte("this is not a zip"), Extension: "docx", FileName: "z.docx"})
	if KindOf(err) != KindInvalidArchive {
		t.Fatalf("expected InvalidArchive, got %v (%v)", KindOf(err), err)
	}
	if !strings.Contains(err.Error(), "Invalid DOCX file") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestExtract_DOCXMalformedXMLIsExtractionFailure(t *testing.T) {
	data := buildZip(t, []zipEntry{{"word/document.xml", "<w:document><w:t>unclosed"}})
	_, err := Extract(Source{Data: data, Extension: "docx", FileName: "bad.docx"})
	if KindOf(err) != KindExtractionFailed {
		t.Fatalf("expected ExtractionFailed for malformed XML, got %v (%v)", KindOf(err), err)
	}
	if !strings.Contains(err.Error(), "Failed to extract text from bad.docx") {
		t.Fatalf("expected filename in message, got %q", err.Error())
	}
}

func TestExtract_DOCXEmptyContent(t *testing.T) {
	data := buildZip(t, []zipEntry{{"word/document.xml", docxDocument("   ")}})
	_, err := Extract(Source{Data: data, Extension: "docx", FileName: "e.docx"})
	if KindOf(err) != KindEmptyContent {
		t.Fatalf("expected EmptyContent, got %v (%v)", KindOf(err), err)
	}
	if err.Error() != "No text content found in DOCX file" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestExtract_DOCXTruncatesAcrossRuns(t *testing.T) {
	runs := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		runs = append(runs, strings.Repeat("a", 2000))
	}
	data := buildZip(t, []zipEntry{{"word/document.xml", docxDocument(runs...)}})
	res, err := Extract(Source{Data: data, Extension: "docx", FileName: "big.docx"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Truncated {
		t.Fatalf("expected truncation for 16000 chars of runs")
	}
	if !strings.HasSuffix(res.Text, truncate.DOCXMarker) {
		t.Fatalf("expected DOCX marker suffix, got tail %q", res.Text[len(res.Text)-60:])
	}
	max := truncate.MaxTextLength + len("\n\n"+truncate.DOCXMarker)
	if len(res.Text) > max {
		t.Fatalf("content length %d exceeds cap %d", len(res.Text), max)
	}
}

const odtContent = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
	` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">` +
	`<office:body><office:text>` +
	`<text:p>First paragraph</text:p>` +
	`<text:p>   </text:p>` +
	`<text:p>Second paragraph</text:p>` +
	`</office:text></office:body></office:document-content>`

func TestExtract_ODTParagraphsBlankLineJoined(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"mimetype", "application/vnd.oasis.opendocument.text"},
		{"content.xml", odtContent},
	})
	res, err := Extract(Source{Data: data, Extension: "odt", FileName: "o.odt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "First paragraph\n\nSecond paragraph" {
		t.Fatalf("expected blank-line joined paragraphs with empties skipped, got %q", res.Text)
	}
}

func TestExtract_ODTDroppedParagraphIsReportedAsTruncation(t *testing.T) {
	// The first paragraph is exactly the cap long, so its blank-line join
	// tips the length over and the second paragraph is dropped. Trimming
	// brings the kept text back to the cap; the result must still carry the
	// marker and report truncation.
	content := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">` +
		`<office:body><office:text>` +
		`<text:p>` + strings.Repeat("a", truncate.MaxTextLength) + `</text:p>` +
		`<text:p>second paragraph</text:p>` +
		`</office:text></office:body></office:document-content>`
	data := buildZip(t, []zipEntry{{"content.xml", content}})
	res, err := Extract(Source{Data: data, Extension: "odt", FileName: "edge.odt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Truncated {
		t.Fatalf("expected truncation when a paragraph was dropped")
	}
	if !strings.HasSuffix(res.Text, truncate.ODTMarker) {
		t.Fatalf("expected ODT marker suffix, got tail %q", res.Text[len(res.Text)-60:])
	}
	if strings.Contains(res.Text, "second paragraph") {
		t.Fatalf("dropped paragraph must not appear in output, got tail %q", res.Text[len(res.Text)-80:])
	}
}

func TestExtract_ODTMissingContentXML(t *testing.T) {
	data := buildZip(t, []zipEntry{{"styles.xml", "<office:styles/>"}})
	_, err := Extract(Source{Data: data, Extension: "odt", FileName: "m.odt"})
	if KindOf(err) != KindMissingEntry {
		t.Fatalf("expected MissingEntry, got %v (%v)", KindOf(err), err)
	}
	if err.Error() != "Invalid ODT file: content.xml not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func epubChapter(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><html xmlns="http://www.w3.org/1999/xhtml">` +
		`<head><title>ch</title></head><body>` + body + `</body></html>`
}

func TestExtract_EPUBCollectsChapters(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"mimetype", "application/epub+zip"},
		{"OEBPS/chapter1.xhtml", epubChapter("<p>First   chapter\n text.</p>")},
		{"OEBPS/style.css", "body { color: black }"},
		{"OEBPS/chapter2.xhtml", epubChapter("<p>Second chapter.</p>")},
	})
	res, err := Extract(Source{Data: data, Extension: "epub", FileName: "b.epub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "First chapter text.") {
		t.Fatalf("expected whitespace-normalized first chapter, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "Second chapter.") {
		t.Fatalf("expected second chapter, got %q", res.Text)
	}
	if strings.Index(res.Text, "First") > strings.Index(res.Text, "Second") {
		t.Fatalf("expected chapters in archive order, got %q", res.Text)
	}
}

func TestExtract_EPUBSkipsEmptyEntries(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"OEBPS/chapter0.xhtml", `<?xml version="1.0"?><html><head><title>empty</title></head></html>`},
		{"OEBPS/chapter1.xhtml", epubChapter("<p>Real text.</p>")},
	})
	res, err := Extract(Source{Data: data, Extension: "epub", FileName: "s.epub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Real text." {
		t.Fatalf("expected only the readable chapter, got %q", res.Text)
	}
}

func TestExtract_EPUBNoMatchingEntries(t *testing.T) {
	data := buildZip(t, []zipEntry{
		{"mimetype", "application/epub+zip"},
		{"META-INF/container.xml", "<container/>"},
	})
	_, err := Extract(Source{Data: data, Extension: "epub", FileName: "n.epub"})
	if KindOf(err) != KindEmptyContent {
		t.Fatalf("expected EmptyContent, got %v (%v)", KindOf(err), err)
	}
	if err.Error() != "No readable text content found in EPUB file" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
