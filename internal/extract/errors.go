package extract

import (
	"errors"
	"fmt"
)

// Kind classifies an extraction failure so callers can branch on it without
// matching message strings.
type Kind int

const (
	// KindUnknown is the zero value; no extraction error carries it.
	KindUnknown Kind = iota
	// KindUnsupportedFormat means the extension is not in the supported set.
	KindUnsupportedFormat
	// KindDecodeError means the byte buffer is not valid text for the
	// expected encoding.
	KindDecodeError
	// KindInvalidArchive means the ZIP container could not be opened.
	KindInvalidArchive
	// KindMissingEntry means a required internal file is absent from an
	// otherwise valid archive.
	KindMissingEntry
	// KindEmptyContent means extraction completed but produced no trimmed
	// text. Expected for image-only and scanned PDFs.
	KindEmptyContent
	// KindPageLimitExceeded means the economy collaborator rejected the
	// document or its page count exceeds the plan maximum.
	KindPageLimitExceeded
	// KindExtractionFailed wraps any other lower-level failure with the
	// filename and cause preserved.
	KindExtractionFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedFormat:
		return "unsupported_format"
	case KindDecodeError:
		return "decode_error"
	case KindInvalidArchive:
		return "invalid_archive"
	case KindMissingEntry:
		return "missing_entry"
	case KindEmptyContent:
		return "empty_content"
	case KindPageLimitExceeded:
		return "page_limit_exceeded"
	case KindExtractionFailed:
		return "extraction_failed"
	default:
		return "unknown"
	}
}

// Error is a typed extraction failure. The message is suitable for direct
// display; the kind supports programmatic branching.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind of err, or KindUnknown when err carries no
// extraction error.
func KindOf(err error) Kind {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindUnknown
}

func failf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}
