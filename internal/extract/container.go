package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/notewise/docingest/internal/truncate"
)

// archiveEntry is one named file inside a ZIP container, fully decompressed.
// Entries are transient views produced for a single extraction call.
type archiveEntry struct {
	name    string
	content []byte
}

// containerSpec parameterizes the shared container extraction routine. DOCX,
// EPUB, and ODT differ only in which entry they require, which entries they
// visit, and how each entry's text is walked, so a single routine serves all
// three.
type containerSpec struct {
	// format is the display token used in failure messages, e.g. "DOCX".
	format string
	// marker is the truncation marker for this format.
	marker string
	// requiredEntry, when non-empty, must exist in the archive; its absence
	// is a MissingEntry failure and only that entry is visited.
	requiredEntry string
	// matchEntry selects candidate entries when no single entry is required.
	matchEntry func(name string) bool
	// walkEntry extracts one entry's text into the accumulator. A non-nil
	// error aborts extraction for a required entry; otherwise the entry is
	// skipped and the walk continues.
	walkEntry func(content []byte, acc *truncate.Accumulator) error
	// emptyMessage is the EmptyContent failure message.
	emptyMessage string
}

// openArchive decompresses a ZIP container into its named entries, in
// enumeration order. Directory entries are dropped.
func openArchive(data []byte, format string) ([]archiveEntry, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, wrapf(KindInvalidArchive, err, "Invalid %s file: archive could not be read", format)
	}
	entries := make([]archiveEntry, 0, len(r.File))
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, wrapf(KindInvalidArchive, err, "Invalid %s file: archive could not be read", format)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, wrapf(KindInvalidArchive, err, "Invalid %s file: archive could not be read", format)
		}
		entries = append(entries, archiveEntry{name: f.Name, content: content})
	}
	return entries, nil
}

// extractContainer runs the shared ZIP-then-walk routine for one container
// format.
func extractContainer(data []byte, spec containerSpec) (Result, error) {
	entries, err := openArchive(data, spec.format)
	if err != nil {
		return Result{}, err
	}

	var acc truncate.Accumulator
	if spec.requiredEntry != "" {
		var required *archiveEntry
		for i := range entries {
			if entries[i].name == spec.requiredEntry {
				required = &entries[i]
				break
			}
		}
		if required == nil {
			return Result{}, failf(KindMissingEntry, "Invalid %s file: %s not found",
				spec.format, baseName(spec.requiredEntry))
		}
		if err := spec.walkEntry(required.content, &acc); err != nil {
			return Result{}, err
		}
	} else {
		for i := range entries {
			if !spec.matchEntry(entries[i].name) {
				continue
			}
			// Unreadable candidate entries are skipped, not fatal.
			_ = spec.walkEntry(entries[i].content, &acc)
			if acc.Full() {
				break
			}
		}
	}

	text, truncated := acc.Finish(spec.marker)
	if text == "" {
		return Result{}, failf(KindEmptyContent, "%s", spec.emptyMessage)
	}
	return Result{Text: text, Truncated: truncated}, nil
}

// baseName returns the final path component of an archive entry name.
func baseName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
