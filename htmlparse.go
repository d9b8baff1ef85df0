package taskconv

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTMLTasks parses the task hierarchy out of an HTML document. It
// locates the body, takes the first ordered list in it (falling back to
// the first unordered list), and reconstructs the nested task tree,
// tolerating the sibling-list layout OneNote exports produce.
func ParseHTMLTasks(htmlContent string) ([]*Task, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, ErrEmptyInput
	}
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		return nil, ErrMissingBody
	}

	list := findElement(body, "ol")
	if list == nil {
		list = findElement(body, "ul")
	}
	if list == nil {
		return nil, ErrNoListFound
	}

	tasks, err := parseListNode(list)
	if err != nil {
		return nil, err
	}

	// OneNote sometimes splits one logical list into several adjacent
	// sibling lists. Tasks from each following sibling belong under the
	// most recent top-level task, same rule as inside a single list.
	for sib := list.NextSibling; sib != nil; sib = sib.NextSibling {
		if !isListElement(sib) {
			continue
		}
		sub, err := parseListNode(sib)
		if err != nil {
			return nil, err
		}
		if len(tasks) > 0 {
			last := tasks[len(tasks)-1]
			last.Subtasks = append(last.Subtasks, sub...)
		} else {
			tasks = append(tasks, sub...)
		}
	}

	return tasks, nil
}

// parseListNode reconstructs the task hierarchy under one <ol> or <ul>.
//
// Real-world exported markup frequently emits a child list as a following
// sibling of the owning <li> rather than nesting it. The walker is a
// two-state machine over the list's direct children: before the first item
// appears, sub-list tasks buffer in pending; afterwards they attach to the
// most recently created task. Items whose text is empty after cleaning are
// skipped without resetting that pointer.
func parseListNode(n *html.Node) ([]*Task, error) {
	if !isListElement(n) {
		tag := n.Data
		if n.Type != html.ElementNode {
			tag = "text"
		}
		return nil, fmt.Errorf("%w: got <%s>", ErrUnexpectedNode, tag)
	}

	var (
		tasks   []*Task
		current *Task
		pending []*Task
	)

	attach := func(sub []*Task) {
		if current != nil {
			current.Subtasks = append(current.Subtasks, sub...)
		} else {
			pending = append(pending, sub...)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch {
		case c.Data == "li":
			// Properly nested sub-lists live inside the item; parse them
			// separately so their text does not leak into the name.
			nested := childLists(c)

			text := CleanText(itemText(c))
			if text == "" {
				for _, list := range nested {
					sub, err := parseListNode(list)
					if err != nil {
						return nil, err
					}
					attach(sub)
				}
				continue
			}

			name, note, err := splitNote(text)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", err, text)
			}

			task := &Task{Name: name, Note: note}
			if len(pending) > 0 {
				task.Subtasks = append(task.Subtasks, pending...)
				pending = nil
			}
			for _, list := range nested {
				sub, err := parseListNode(list)
				if err != nil {
					return nil, err
				}
				task.Subtasks = append(task.Subtasks, sub...)
			}
			tasks = append(tasks, task)
			current = task

		case isListElement(c):
			sub, err := parseListNode(c)
			if err != nil {
				return nil, err
			}
			attach(sub)
		}
	}

	return tasks, nil
}

func isListElement(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ol" || n.Data == "ul")
}

// findElement returns the first element with the given tag in depth-first
// document order, n included.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// itemText concatenates the visible text under a list item with
// single-space separators, excluding nested list subtrees.
func itemText(li *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		if n != li && isListElement(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(li)
	return strings.Join(parts, " ")
}

// childLists returns the outermost list containers nested under a list
// item, in document order.
func childLists(li *html.Node) []*html.Node {
	var lists []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isListElement(c) {
				lists = append(lists, c)
				continue
			}
			walk(c)
		}
	}
	walk(li)
	return lists
}
