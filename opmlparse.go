package taskconv

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// noTextPlaceholder substitutes for an outline with no text attribute at
// all. An outline whose text attribute is present but empty is dropped
// instead.
const noTextPlaceholder = "(no text)"

// statusChecked marks a completed MLO task; the whole subtree under it is
// excluded from conversion.
const statusChecked = "checked"

// opmlDocument mirrors just enough of the OPML shape: nesting plus the
// text, _note and _status attributes. Attributes are collected raw so a
// missing text attribute can be told apart from an empty one.
type opmlDocument struct {
	XMLName xml.Name  `xml:"opml"`
	Body    *opmlBody `xml:"body"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Attrs    []xml.Attr    `xml:",any,attr"`
	Children []opmlOutline `xml:"outline"`
}

func (o opmlOutline) attr(name string) (string, bool) {
	for _, a := range o.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseOPMLTasks parses an MLO OPML export into a task tree. Checked
// outlines are pruned together with all their descendants, regardless of
// the descendants' own status.
func ParseOPMLTasks(source string) ([]*Task, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyInput
	}

	var doc opmlDocument
	if err := xml.Unmarshal([]byte(source), &doc); err != nil {
		return nil, fmt.Errorf("parsing opml: %w", err)
	}
	if doc.Body == nil {
		return nil, ErrMissingBody
	}

	var tasks []*Task
	for _, outline := range doc.Body.Outlines {
		if task := parseOutline(outline); task != nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// parseOutline converts one outline element, returning nil for checked or
// nameless nodes. Pruning is top-down and short-circuits: a checked node
// hides its whole subtree without recursing into it.
func parseOutline(o opmlOutline) *Task {
	if status, _ := o.attr("_status"); status == statusChecked {
		return nil
	}

	name, ok := o.attr("text")
	if !ok {
		name = noTextPlaceholder
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	note, _ := o.attr("_note")
	task := &Task{Name: name, Note: strings.TrimSpace(note)}

	for _, child := range o.Children {
		if sub := parseOutline(child); sub != nil {
			task.Subtasks = append(task.Subtasks, sub)
		}
	}
	return task
}
