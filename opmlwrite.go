package taskconv

import (
	"encoding/xml"
	"fmt"
)

// xmlOPML is the fixed OPML envelope: version attribute, head/title, and
// a body holding the top-level outlines.
type xmlOPML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    xmlHead  `xml:"head"`
	Body    xmlBody  `xml:"body"`
}

type xmlHead struct {
	Title string `xml:"title"`
}

type xmlBody struct {
	Outlines []xmlOutline `xml:"outline"`
}

type xmlOutline struct {
	Text     string       `xml:"text,attr"`
	Note     string       `xml:"_note,attr,omitempty"`
	Children []xmlOutline `xml:"outline"`
}

// RenderOPML serializes the task tree into a complete OPML document: XML
// declaration, UTF-8, two-space indentation, explicit open/close tags
// even for empty outlines (encoding/xml never self-closes, which is
// exactly what MLO's importer expects).
func RenderOPML(tasks []*Task, title string) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNothingToExport
	}
	if title == "" {
		title = defaultTitle
	}

	doc := xmlOPML{
		Version: "1.0",
		Head:    xmlHead{Title: title},
		Body:    xmlBody{Outlines: buildOutlines(tasks)},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing opml: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

// buildOutlines maps tasks to outline elements depth-first, preserving
// order and skipping tasks whose name is empty.
func buildOutlines(tasks []*Task) []xmlOutline {
	outlines := make([]xmlOutline, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.Name == "" {
			continue
		}
		outlines = append(outlines, xmlOutline{
			Text:     t.Name,
			Note:     t.Note,
			Children: buildOutlines(t.Subtasks),
		})
	}
	return outlines
}
