package taskconv

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConverter_MHTToOPML(t *testing.T) {
	t.Parallel()

	conv := New(WithTitle("Imported"))
	res, err := conv.Convert(context.Background(), Input{
		Content: multipartMHT,
		From:    FormatMHT,
		To:      FormatOPML,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if !strings.Contains(res.Output, `<outline text="A"></outline>`) {
		t.Errorf("Convert() output missing outline:\n%s", res.Output)
	}
	if !strings.Contains(res.Output, "<title>Imported</title>") {
		t.Errorf("Convert() output missing configured title:\n%s", res.Output)
	}
	if len(res.Tasks) != 1 || res.Tasks[0].Name != "A" {
		t.Errorf("Convert() tasks = %+v, want single task A", res.Tasks)
	}
}

func TestConverter_OPMLToHTML(t *testing.T) {
	t.Parallel()

	opml := `<opml version="1.0"><body>
  <outline text="Groceries" _note="weekly">
    <outline text="Milk"/>
  </outline>
</body></opml>`

	conv := New(WithNoteStyle(NoteStyleInline))
	res, err := conv.Convert(context.Background(), Input{
		Content: opml,
		From:    FormatOPML,
		To:      FormatHTML,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	for _, want := range []string{
		">Groceries</span>",
		"#note=weekly</span>",
		">Milk</span>",
		"list-style-type:lower-alpha",
	} {
		if !strings.Contains(res.Output, want) {
			t.Errorf("Convert() output missing %q:\n%s", want, res.Output)
		}
	}
}

func TestConverter_TextToOPML(t *testing.T) {
	t.Parallel()

	text := "1. Groceries\n" +
		"  a. Milk #note=2% organic\n"

	conv := New(WithIndentWidth(2))
	res, err := conv.Convert(context.Background(), Input{
		Content: text,
		From:    FormatText,
		To:      FormatOPML,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if !strings.Contains(res.Output, `<outline text="Milk" _note="2% organic"></outline>`) {
		t.Errorf("Convert() output missing nested noted outline:\n%s", res.Output)
	}
}

func TestConverter_MarkdownToOPML(t *testing.T) {
	t.Parallel()

	res, err := New().Convert(context.Background(), Input{
		Content: "- Top\n  - Child\n",
		From:    FormatMarkdown,
		To:      FormatOPML,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(res.Output, `<outline text="Top">`) ||
		!strings.Contains(res.Output, `<outline text="Child"></outline>`) {
		t.Errorf("Convert() output missing nested outlines:\n%s", res.Output)
	}
}

func TestConverter_UnsupportedFormats(t *testing.T) {
	t.Parallel()

	conv := New()

	_, err := conv.Parse(context.Background(), "x", Format("docx"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnsupportedFormat)
	}

	_, err = conv.Render(context.Background(), []*Task{{Name: "A"}}, FormatText)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Render() error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Convert(ctx, Input{Content: "1. A\n", From: FormatText, To: FormatOPML})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want %v", err, context.Canceled)
	}
}

func TestConverter_ParseErrorsPropagate(t *testing.T) {
	t.Parallel()

	_, err := New().Convert(context.Background(), Input{
		Content: "",
		From:    FormatHTML,
		To:      FormatOPML,
	})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Convert() error = %v, want %v", err, ErrEmptyInput)
	}
}

// captureLogger records calls for asserting the logging surface.
type captureLogger struct {
	debugs []string
	infos  []string
}

func (l *captureLogger) Debug(msg any, _ ...any) {
	l.debugs = append(l.debugs, msg.(string))
}

func (l *captureLogger) Info(msg any, _ ...any) {
	l.infos = append(l.infos, msg.(string))
}

func TestConverter_LogsThroughInjectedLogger(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	_, err := New(WithLogger(logger)).Convert(context.Background(), Input{
		Content: "1. A\n",
		From:    FormatText,
		To:      FormatOPML,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if len(logger.debugs) == 0 {
		t.Error("expected a debug entry for the parse stage")
	}
	if len(logger.infos) != 1 || logger.infos[0] != "converted" {
		t.Errorf("infos = %v, want a single %q entry", logger.infos, "converted")
	}
}
