// Package truncate enforces the shared output length policy for all
// extractors: at most MaxTextLength characters of content, with a
// deterministic marker appended when the source held more.
package truncate

import (
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the hard cap on extracted content length. The appended
// truncation marker is allowed on top of this cap.
const MaxTextLength = 10000

// Truncation markers, one per format family so the output preserves its
// provenance. Callers pick the marker at the call site.
const (
	TextMarker = "[Text truncated for performance]"
	PDFMarker  = "[PDF content truncated for performance]"
	DOCXMarker = "[DOCX content truncated for performance]"
	EPUBMarker = "[EPUB content truncated for performance]"
	ODTMarker  = "[ODT content truncated for performance]"
)

// Cap returns text unchanged when it fits within MaxTextLength. Otherwise it
// returns the first MaxTextLength characters followed by a blank line and the
// marker, reporting truncation.
func Cap(text, marker string) (string, bool) {
	if len(text) <= MaxTextLength {
		return text, false
	}
	cut := MaxTextLength
	// Never split a multi-byte rune at the cut point.
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "\n\n" + marker, true
}

// Accumulator gathers text incrementally and remembers when the cap has been
// crossed, so streaming extractors (pages, archive entries, paragraphs) can
// stop reading early instead of materializing the whole source. Once full,
// further Add calls are no-ops.
type Accumulator struct {
	b    strings.Builder
	full bool
}

// Add appends s unless the accumulator is already full. It reports whether
// the cap has been exceeded after the append, which is the caller's signal to
// break out of its iteration.
func (a *Accumulator) Add(s string) bool {
	if a.full {
		return true
	}
	a.b.WriteString(s)
	if a.b.Len() > MaxTextLength {
		a.full = true
	}
	return a.full
}

// Full reports whether the cap has been exceeded.
func (a *Accumulator) Full() bool { return a.full }

// Len returns the accumulated length so far.
func (a *Accumulator) Len() int { return a.b.Len() }

// Text returns the raw accumulated text without applying the cap.
func (a *Accumulator) Text() string { return a.b.String() }

// Finish trims the accumulated text and applies Cap with the given marker.
// Truncation is reported whenever the cap was crossed during accumulation,
// even when trimming brings the kept text back under the cap: input after the
// crossing was dropped, and the marker must record that.
func (a *Accumulator) Finish(marker string) (string, bool) {
	text := strings.TrimSpace(a.b.String())
	if text == "" {
		return "", false
	}
	if capped, truncated := Cap(text, marker); truncated {
		return capped, true
	}
	if a.full {
		return text + "\n\n" + marker, true
	}
	return text, false
}
