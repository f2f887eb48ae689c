// Package extract converts user-supplied study documents into a bounded
// plain-text representation usable by downstream content generation. It
// understands plain text, rich text, PDF, Word containers, EPUB, and
// OpenDocument Text, and normalizes every outcome into one result/error
// contract.
package extract

import (
	"fmt"
	"strings"
)

// Source is one uploaded document: raw bytes plus the extension and display
// filename the upload carried. Sources are never retained beyond a single
// extraction call.
type Source struct {
	Data      []byte
	Extension string
	FileName  string
}

// Result is the successful outcome of an extraction. Text is non-empty after
// trimming and never longer than the length cap plus the truncation marker.
type Result struct {
	Text      string
	Truncated bool
}

// Formats maps each supported extension to its display name. The names are
// used for UI labeling only and carry no behavior.
var Formats = map[string]string{
	"txt":  "Text Document",
	"rtf":  "Rich Text Format",
	"pdf":  "PDF Document",
	"doc":  "Word Document (Legacy)",
	"docx": "Word Document",
	"epub": "EPUB Ebook",
	"odt":  "OpenDocument Text",
}

// DisplayName returns the user-facing name for an extension, or the empty
// string when the extension is unsupported.
func DisplayName(ext string) string {
	return Formats[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// Supported reports whether the extension has an extractor.
func Supported(ext string) bool {
	_, ok := Formats[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

// Extract routes the source to the extractor for its extension and returns
// the bounded text. Failures are always a typed *Error; any panic or untyped
// error from an inner extractor is rewrapped here with the filename attached,
// so no raw failure escapes the package.
func Extract(src Source) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrapf(KindExtractionFailed, fmt.Errorf("%v", r),
				"Failed to extract text from %s: %v", src.FileName, r)
		}
	}()

	ext := strings.ToLower(strings.TrimPrefix(src.Extension, "."))
	var inner func([]byte) (Result, error)
	switch ext {
	case "txt":
		inner = extractText
	case "rtf":
		inner = extractRTF
	case "pdf":
		inner = extractPDF
	case "doc", "docx":
		// Legacy .doc is routed through the DOCX container path; true
		// binary .doc files fail with InvalidArchive or MissingEntry.
		inner = extractDOCX
	case "epub":
		inner = extractEPUB
	case "odt":
		inner = extractODT
	default:
		return Result{}, failf(KindUnsupportedFormat, "File format .%s is not supported", ext)
	}

	res, err = inner(src.Data)
	if err != nil {
		if _, ok := err.(*Error); ok {
			return Result{}, err
		}
		return Result{}, wrapf(KindExtractionFailed, err,
			"Failed to extract text from %s: %v", src.FileName, err)
	}
	return res, nil
}

// Outcome pairs a Result with its error for asynchronous delivery.
type Outcome struct {
	Result Result
	Err    error
}

// ExtractAsync runs Extract on its own goroutine and delivers the outcome on
// the returned channel. The channel is buffered, so a caller that times out
// may simply abandon it without leaking the worker. Concurrent calls never
// interact; no component here holds state across invocations.
func ExtractAsync(src Source) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		res, err := Extract(src)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}
