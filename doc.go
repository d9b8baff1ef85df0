// Package taskconv converts hierarchical task lists between OneNote MHT
// exports, MyLifeOrganized OPML, indented plain text, and Markdown lists.
//
// # Quick Start
//
// Create a converter and run a conversion:
//
//	conv := taskconv.New()
//	result, err := conv.Convert(ctx, taskconv.Input{
//	    Content: mhtContent,
//	    From:    taskconv.FormatMHT,
//	    To:      taskconv.FormatOPML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("todo.opml", []byte(result.Output), 0644)
//
// The result contains both the serialized document (result.Output) and the
// canonical task tree (result.Tasks) for callers that post-process it.
//
// # Conversion Pipeline
//
// Every conversion is a single parse pass followed by a single serialize
// pass over a shared canonical tree:
//
//  1. Input unwrapping (MIME/MHT payload extraction, quoted-printable)
//  2. Hierarchy parsing into the Task tree (HTML, OPML, text, or Markdown)
//  3. Serialization to OPML or a styled numbered HTML list
//
// Parsers and serializers are independent peers; Parse and Render are also
// usable on their own.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := taskconv.New(
//	    taskconv.WithTitle("Weekly Review"),
//	    taskconv.WithNoteStyle(taskconv.NoteStyleInline),
//	    taskconv.WithLogger(logger),
//	)
//
// # Parallel Processing
//
// For batch conversion, ConverterPool bounds the number of concurrent
// conversions:
//
//	pool := taskconv.NewConverterPool(taskconv.ResolvePoolSize(0))
//	conv := pool.Acquire()
//	defer pool.Release(conv)
package taskconv
