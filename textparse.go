package taskconv

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultIndentWidth is how many leading spaces make one nesting level
// when lines are indented with spaces. Tabs always count one level each.
const defaultIndentWidth = 4

// numberingToken matches a hand-typed list numbering prefix: one or more
// alphanumerics, an optional period, an optional trailing space ("1. ",
// "a) " minus the paren, "12 ", "iv. ").
var numberingToken = regexp.MustCompile(`^[0-9A-Za-z]+\.? ?`)

// ParseTextTasks turns an indented, numbered plain-text block into a task
// tree using the default indent width.
func ParseTextTasks(source string) ([]*Task, error) {
	return parseTextTasks(source, defaultIndentWidth)
}

func parseTextTasks(source string, indentWidth int) ([]*Task, error) {
	if indentWidth < 1 {
		indentWidth = defaultIndentWidth
	}

	var roots []*Task

	// seqs[l] is the insertion sequence for level l: the subtask slice of
	// the task most recently inserted at l-1, or the root list for l = 0.
	// Entries are nil where an indentation jump skipped a level; a line
	// landing on a nil entry attaches to the deepest open level below it,
	// so consecutive over-indented lines stay siblings.
	seqs := []*[]*Task{&roots}

	seen := false
	for i, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seen = true
		lineNum := i + 1

		level := indentLevel(line, indentWidth)
		content := numberingToken.ReplaceAllString(strings.TrimSpace(line), "")
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrNumberingOnlyLine)
		}

		name, note, err := splitNote(content)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		// Dedenting closes every deeper branch.
		if len(seqs) > level+1 {
			seqs = seqs[:level+1]
		}
		idx := len(seqs) - 1
		for seqs[idx] == nil {
			idx--
		}

		task := &Task{Name: name, Note: note}
		*seqs[idx] = append(*seqs[idx], task)

		for len(seqs) < level+1 {
			seqs = append(seqs, nil)
		}
		seqs = append(seqs, &task.Subtasks)
	}

	if !seen {
		return nil, ErrEmptyInput
	}
	return roots, nil
}

// indentLevel infers nesting depth from leading whitespace: a run that
// starts with a tab counts one level per tab, otherwise one level per
// indentWidth spaces (integer division).
func indentLevel(line string, indentWidth int) int {
	if strings.HasPrefix(line, "\t") {
		n := 0
		for n < len(line) && line[n] == '\t' {
			n++
		}
		return n
	}
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n / indentWidth
}
