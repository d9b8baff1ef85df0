package taskconv

import "errors"

// Sentinel errors for parsing and serialization. All are terminal for the
// current conversion; the core never retries, prints, or exits.
var (
	ErrEmptyInput        = errors.New("input has no usable content")
	ErrEmptyHTMLPart     = errors.New("no non-empty HTML part found in MHT container")
	ErrUnexpectedNode    = errors.New("expected an <ol> or <ul> list container")
	ErrMalformedNote     = errors.New("#note marker present but task name is empty")
	ErrNumberingOnlyLine = errors.New("line contains nothing but a numbering token")
	ErrMissingBody       = errors.New("document has no body element")
	ErrNoListFound       = errors.New("no ordered or unordered list found in body")
	ErrNothingToExport   = errors.New("no tasks to export")
	ErrUnsupportedFormat = errors.New("unsupported conversion format")
)
