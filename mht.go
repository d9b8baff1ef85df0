package taskconv

import (
	"io"
	"mime/quotedprintable"
	"regexp"
	"strings"
)

var (
	boundaryPattern    = regexp.MustCompile(`(?im)boundary\s*=\s*["']?([^"'\r\n;]+)`)
	blankLinePattern   = regexp.MustCompile(`\r?\n\r?\n`)
	transferEncodingQP = "quoted-printable"
)

// ExtractHTML pulls the HTML payload out of a raw MHT container. It
// handles multipart MIME with a boundary parameter as well as single-part
// bodies, and reverses quoted-printable transfer encoding when a part
// declares it. Pure transform, no side effects.
func ExtractHTML(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyInput
	}

	body := extractBody(raw)
	if strings.TrimSpace(body) == "" {
		return "", ErrEmptyHTMLPart
	}
	return body, nil
}

// extractBody resolves the HTML body of the container. With a boundary it
// scans the inner fragments for the text/html one; without a boundary, or
// when no fragment matches, the whole input is treated as single-part.
func extractBody(raw string) string {
	if m := boundaryPattern.FindStringSubmatch(raw); m != nil {
		parts := strings.Split(raw, "--"+m[1])
		// parts[0] is the MIME preamble and the last fragment is the
		// terminator; only the middle fragments hold content.
		for i := 1; i < len(parts)-1; i++ {
			part := strings.TrimSpace(parts[i])
			if part == "" {
				continue
			}
			header, body, ok := splitHeaderBody(part)
			if !ok {
				continue // malformed fragment, no blank-line separator
			}
			if strings.Contains(strings.ToLower(header), "text/html") {
				return decodeTransfer(header, body)
			}
		}
	}

	header, body, ok := splitHeaderBody(raw)
	if !ok {
		return raw
	}
	return decodeTransfer(header, body)
}

// splitHeaderBody splits a MIME fragment into its header block and body at
// the first blank line, CRLF or LF.
func splitHeaderBody(fragment string) (header, body string, ok bool) {
	loc := blankLinePattern.FindStringIndex(fragment)
	if loc == nil {
		return "", "", false
	}
	return fragment[:loc[0]], fragment[loc[1]:], true
}

// decodeTransfer reverses quoted-printable encoding when the header block
// declares it. Decode failures fall back to the undecoded body: exported
// containers are frequently sloppy and a best-effort payload is still
// parseable markup.
func decodeTransfer(header, body string) string {
	if !strings.Contains(strings.ToLower(header), transferEncodingQP) {
		return body
	}
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	if err != nil {
		return body
	}
	return string(decoded)
}
