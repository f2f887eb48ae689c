package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/notewise/docingest/internal/truncate"
)

// extractText decodes the buffer as UTF-8 and applies the length cap.
func extractText(data []byte) (Result, error) {
	if !utf8.Valid(data) {
		return Result{}, failf(KindDecodeError, "Failed to decode text file: invalid UTF-8 byte sequence")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Result{}, failf(KindEmptyContent, "No text content found in text file")
	}
	capped, truncated := truncate.Cap(text, truncate.TextMarker)
	return Result{Text: capped, Truncated: truncated}, nil
}

// rtfControlWordRe matches RTF control words: a backslash followed by letters
// and an optional numeric parameter, e.g. \par, \fs24, \lang1033.
var rtfControlWordRe = regexp.MustCompile(`\\[a-zA-Z]+-?\d*`)

// extractRTF strips RTF control sequences heuristically: control words, then
// group braces, then remaining backslashes. This is deliberately not a full
// RTF grammar; escaped braces, hex escapes (\'xx) and embedded binary objects
// can leak stray characters into the output, and downstream consumers depend
// on that best-effort behavior.
func extractRTF(data []byte) (Result, error) {
	if !utf8.Valid(data) {
		return Result{}, failf(KindDecodeError, "Failed to decode RTF file: invalid UTF-8 byte sequence")
	}
	text := rtfControlWordRe.ReplaceAllString(string(data), "")
	text = strings.ReplaceAll(text, "{", "")
	text = strings.ReplaceAll(text, "}", "")
	text = strings.ReplaceAll(text, "\\", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, failf(KindEmptyContent, "No text content found in RTF file")
	}
	capped, truncated := truncate.Cap(text, truncate.TextMarker)
	return Result{Text: capped, Truncated: truncated}, nil
}
