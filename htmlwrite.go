package taskconv

import (
	"fmt"
	"html"
	"strings"
)

// numberingStyles is the repeating numbering cycle keyed by nesting depth
// modulo 5. "decimal)" is not a valid CSS list-style-type, but it is the
// token OneNote round-trips for the "1)" numbering form, so it is emitted
// verbatim.
var numberingStyles = [5]string{
	"decimal",     // 1. 2. 3.
	"lower-alpha", // a. b. c.
	"lower-roman", // i. ii. iii.
	"decimal)",    // 1) 2) 3)
	"decimal",     // 1. 2. 3. (cycle repeats)
}

const (
	taskSpanStyle = "font-family:Calibri;font-size:11pt"
	noteSpanStyle = taskSpanStyle + ";font-style:italic"
	listIndent    = "margin-left:36pt"
)

const htmlShellHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Calibri, sans-serif; font-size: 11pt; }
ol { margin-left: 36pt; }
</style>
</head>
<body>
`

// RenderHTML serializes the task tree into a self-contained HTML document
// of nested ordered lists styled for pasting into OneNote. The numbering
// style of each list is selected by its depth modulo 5; notes render per
// the chosen NoteStyle.
func RenderHTML(tasks []*Task, title string, noteStyle NoteStyle) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNothingToExport
	}
	if title == "" {
		title = defaultTitle
	}
	if noteStyle != NoteStyleInline {
		noteStyle = NoteStyleSubItem
	}

	var b strings.Builder
	fmt.Fprintf(&b, htmlShellHead, html.EscapeString(title))
	writeTaskList(&b, tasks, 0, noteStyle)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// writeTaskList emits one <ol> and its items at the given depth.
func writeTaskList(b *strings.Builder, tasks []*Task, depth int, noteStyle NoteStyle) {
	pad := strings.Repeat("  ", depth)
	style := numberingStyles[depth%len(numberingStyles)]
	fmt.Fprintf(b, "%s<ol style=\"list-style-type:%s;%s\">\n", pad, style, listIndent)

	for _, t := range tasks {
		if t == nil || t.Name == "" {
			continue
		}

		inline := ""
		if t.Note != "" && noteStyle == NoteStyleInline {
			inline = fmt.Sprintf("<span style=%q>%s</span>",
				noteSpanStyle, html.EscapeString(noteMarker+t.Note))
		}

		hasBlock := len(t.Subtasks) > 0 || (t.Note != "" && noteStyle == NoteStyleSubItem)
		if !hasBlock {
			fmt.Fprintf(b, "%s  <li><span style=%q>%s</span>%s</li>\n",
				pad, taskSpanStyle, html.EscapeString(t.Name), inline)
			continue
		}

		fmt.Fprintf(b, "%s  <li><span style=%q>%s</span>%s\n",
			pad, taskSpanStyle, html.EscapeString(t.Name), inline)
		if t.Note != "" && noteStyle == NoteStyleSubItem {
			writeNoteItem(b, t.Note, pad)
		}
		if len(t.Subtasks) > 0 {
			writeTaskList(b, t.Subtasks, depth+1, noteStyle)
		}
		fmt.Fprintf(b, "%s  </li>\n", pad)
	}

	fmt.Fprintf(b, "%s</ol>\n", pad)
}

// writeNoteItem emits the note as an italic item in a marker-less
// unordered sub-list directly under the task.
func writeNoteItem(b *strings.Builder, note, pad string) {
	fmt.Fprintf(b, "%s    <ul style=\"list-style-type:none;%s\">\n", pad, listIndent)
	fmt.Fprintf(b, "%s      <li><span style=%q>%s</span></li>\n",
		pad, noteSpanStyle, html.EscapeString(note))
	fmt.Fprintf(b, "%s    </ul>\n", pad)
}
