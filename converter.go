package taskconv

import (
	"context"
	"fmt"
)

// Converter turns one task-list representation into another. Each
// conversion is a single parse pass building the canonical tree followed
// by a single serialize pass consuming it; no state is shared across
// conversions, so a Converter is safe for sequential reuse.
type Converter struct {
	cfg converterConfig
	log Logger
}

// New creates a Converter with default configuration. Use options to
// customize behavior (e.g., WithTitle, WithNoteStyle, WithLogger).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			title:       defaultTitle,
			noteStyle:   NoteStyleSubItem,
			indentWidth: defaultIndentWidth,
		},
		log: nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the full parse-then-serialize pipeline. The serialized
// output is fully buffered in the result; callers own the file write, so
// a failed conversion can never leave a partial output file behind.
func (c *Converter) Convert(ctx context.Context, in Input) (*Result, error) {
	tasks, err := c.Parse(ctx, in.Content, in.From)
	if err != nil {
		return nil, err
	}

	output, err := c.Render(ctx, tasks, in.To)
	if err != nil {
		return nil, err
	}

	c.log.Info("converted", "from", in.From, "to", in.To, "tasks", len(tasks))
	return &Result{Output: output, Tasks: tasks}, nil
}

// Parse builds the canonical task tree from content in the given format.
func (c *Converter) Parse(ctx context.Context, content string, from Format) ([]*Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		tasks []*Task
		err   error
	)
	switch from {
	case FormatMHT:
		var payload string
		payload, err = ExtractHTML(content)
		if err == nil {
			tasks, err = ParseHTMLTasks(payload)
		}
	case FormatHTML:
		tasks, err = ParseHTMLTasks(content)
	case FormatOPML:
		tasks, err = ParseOPMLTasks(content)
	case FormatText:
		tasks, err = parseTextTasks(content, c.cfg.indentWidth)
	case FormatMarkdown:
		tasks, err = ParseMarkdownTasks(content)
	default:
		return nil, fmt.Errorf("%w: cannot parse %q", ErrUnsupportedFormat, from)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug("parsed input", "format", from, "topLevelTasks", len(tasks))
	return tasks, nil
}

// Render serializes a task tree to the given target format.
func (c *Converter) Render(ctx context.Context, tasks []*Task, to Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch to {
	case FormatOPML:
		return RenderOPML(tasks, c.cfg.title)
	case FormatHTML:
		return RenderHTML(tasks, c.cfg.title, c.cfg.noteStyle)
	default:
		return "", fmt.Errorf("%w: cannot render %q", ErrUnsupportedFormat, to)
	}
}
