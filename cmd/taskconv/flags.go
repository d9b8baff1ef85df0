package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config      string
	from        string
	to          string
	title       string
	noteStyle   string
	workers     int
	interactive bool
	verbose     bool
	quiet       bool
	version     bool
}

const usageHeader = `taskconv converts hierarchical task lists between OneNote MHT exports,
MyLifeOrganized OPML, indented plain text, and Markdown lists.

Usage:
  taskconv [flags] <input> <output>
  taskconv [flags] <input-dir> <output-dir>
  taskconv --interactive

Formats are detected from file extensions (.mht .mhtml .html .htm .opml
.xml .txt .text .md .markdown); --from and --to override detection.

Flags:
`

// parseFlags parses command-line arguments into flags and positionals.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("taskconv", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "path to YAML config file")
	fs.StringVar(&f.from, "from", "", "input format: mht, html, opml, text, markdown")
	fs.StringVar(&f.to, "to", "", "output format: opml, html")
	fs.StringVar(&f.title, "title", "", "document title for the output envelope")
	fs.StringVar(&f.noteStyle, "note-style", "", "HTML note rendering: subitem or inline")
	fs.IntVarP(&f.workers, "workers", "w", 0, "batch pool size (0 = auto)")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "start the interactive form")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageHeader)
		fmt.Fprintln(os.Stderr, fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
