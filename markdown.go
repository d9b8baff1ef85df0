package taskconv

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// ParseMarkdownTasks parses nested Markdown lists into a task tree. Every
// top-level list in the document contributes top-level tasks; surrounding
// prose is ignored. Item text goes through the shared normalizer and the
// " #note=" convention, same as HTML list items.
func ParseMarkdownTasks(source string) ([]*Task, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyInput
	}

	src := []byte(source)
	root := goldmark.DefaultParser().Parse(gtext.NewReader(src))

	var tasks []*Task
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		list, ok := n.(*ast.List)
		if !ok {
			continue
		}
		sub, err := parseMarkdownList(list, src)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, sub...)
	}

	if tasks == nil {
		return nil, ErrNoListFound
	}
	return tasks, nil
}

func parseMarkdownList(list *ast.List, src []byte) ([]*Task, error) {
	var tasks []*Task

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		text := CleanText(markdownItemText(item, src))

		var task *Task
		if text != "" {
			name, note, err := splitNote(text)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", err, text)
			}
			task = &Task{Name: name, Note: note}
			tasks = append(tasks, task)
		}

		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			nested, ok := c.(*ast.List)
			if !ok {
				continue
			}
			sub, err := parseMarkdownList(nested, src)
			if err != nil {
				return nil, err
			}
			switch {
			case task != nil:
				task.Subtasks = append(task.Subtasks, sub...)
			case len(tasks) > 0:
				last := tasks[len(tasks)-1]
				last.Subtasks = append(last.Subtasks, sub...)
			default:
				tasks = append(tasks, sub...)
			}
		}
	}

	return tasks, nil
}

// markdownItemText flattens the inline text of a list item, excluding
// nested list subtrees.
func markdownItemText(item ast.Node, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.List); ok {
			continue
		}
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// blockText collects the raw text segments under one block node.
func blockText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
