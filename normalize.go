package taskconv

import (
	"regexp"
	"strings"
)

// noteMarker separates a task name from its inline note annotation in
// plain-text lines, list-item text, and inline-style HTML output.
const noteMarker = " #note="

var (
	numericRefPattern = regexp.MustCompile(`&#\d+;`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText replaces numeric character references with single spaces,
// collapses every whitespace run into one space, and trims the result.
// References such as &#10; encode embedded line breaks in exported markup
// and must not surface as literal digits. Idempotent.
func CleanText(text string) string {
	text = numericRefPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// splitNote splits text on the first noteMarker occurrence into a task
// name and a note. Text without the marker is all name. Returns
// ErrMalformedNote when the marker is present but the name side is empty.
func splitNote(text string) (name, note string, err error) {
	idx := strings.Index(text, noteMarker)
	if idx < 0 {
		return strings.TrimSpace(text), "", nil
	}
	name = strings.TrimSpace(text[:idx])
	note = strings.TrimSpace(text[idx+len(noteMarker):])
	if name == "" {
		return "", "", ErrMalformedNote
	}
	return name, note, nil
}
