package taskconv

// Task is one node of the canonical tree shared by every parser and
// serializer. It carries no identity beyond its position; equality is
// structural, and Subtasks order always matches source document order.
type Task struct {
	Name     string  // required, trimmed, never empty in parser output
	Note     string  // optional annotation; "" means no note
	Subtasks []*Task // children in source order, may be empty
}

// Equal reports whether two trees match structurally: name, note, child
// count and child order at every node.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Name != other.Name || t.Note != other.Note {
		return false
	}
	if len(t.Subtasks) != len(other.Subtasks) {
		return false
	}
	for i, sub := range t.Subtasks {
		if !sub.Equal(other.Subtasks[i]) {
			return false
		}
	}
	return true
}

// Format identifies a source or target representation.
type Format string

// Input formats; FormatOPML and FormatHTML are also valid targets.
const (
	FormatMHT      Format = "mht"
	FormatHTML     Format = "html"
	FormatOPML     Format = "opml"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// NoteStyle selects how notes are rendered in HTML output.
type NoteStyle string

const (
	// NoteStyleSubItem renders the note as an italic item in an unordered,
	// marker-less sub-list under the task.
	NoteStyleSubItem NoteStyle = "subitem"

	// NoteStyleInline renders the note as an italic " #note="-prefixed span
	// after the task name. This is the only form the HTML parser can read
	// back, so round-tripping through HTML requires it.
	NoteStyleInline NoteStyle = "inline"
)

// Input contains conversion parameters.
type Input struct {
	Content string // raw source document (required)
	From    Format // source format (required)
	To      Format // target format: FormatOPML or FormatHTML
}

// Result holds conversion output.
type Result struct {
	Output string  // serialized document, ready to write as UTF-8
	Tasks  []*Task // canonical tree, for callers that post-process it
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	title       string
	noteStyle   NoteStyle
	indentWidth int
}

// defaultTitle is used for OPML head/title and the HTML <title> when no
// title is configured.
const defaultTitle = "Task List"

// WithTitle sets the document title used by both serializers.
func WithTitle(title string) Option {
	return func(c *Converter) {
		if title != "" {
			c.cfg.title = title
		}
	}
}

// WithNoteStyle selects the HTML note rendering form.
func WithNoteStyle(style NoteStyle) Option {
	return func(c *Converter) {
		if style == NoteStyleSubItem || style == NoteStyleInline {
			c.cfg.noteStyle = style
		}
	}
}

// WithIndentWidth sets how many leading spaces make one nesting level in
// plain-text input. Tabs always count one level each. Values below 1 keep
// the default.
func WithIndentWidth(width int) Option {
	return func(c *Converter) {
		if width >= 1 {
			c.cfg.indentWidth = width
		}
	}
}

// WithLogger supplies a structured logger for pipeline progress events.
// Without it the converter stays silent.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}
