package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"taskconv",
		"--from", "text",
		"--to", "html",
		"--title", "My List",
		"--note-style", "inline",
		"-w", "4",
		"-v",
		"in.txt", "out.html",
	})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if flags.from != "text" || flags.to != "html" {
		t.Errorf("format flags = %q/%q, want text/html", flags.from, flags.to)
	}
	if flags.title != "My List" {
		t.Errorf("title = %q, want %q", flags.title, "My List")
	}
	if flags.noteStyle != "inline" {
		t.Errorf("noteStyle = %q, want %q", flags.noteStyle, "inline")
	}
	if flags.workers != 4 {
		t.Errorf("workers = %d, want 4", flags.workers)
	}
	if !flags.verbose {
		t.Error("verbose flag not set")
	}
	if len(args) != 2 || args[0] != "in.txt" || args[1] != "out.html" {
		t.Errorf("positionals = %v, want [in.txt out.html]", args)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"taskconv", "a.mht", "b.opml"})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if flags.from != "" || flags.to != "" || flags.title != "" {
		t.Errorf("expected empty defaults, got %+v", flags)
	}
	if flags.interactive || flags.verbose || flags.quiet || flags.version {
		t.Errorf("expected boolean flags off by default, got %+v", flags)
	}
	if len(args) != 2 {
		t.Errorf("positionals = %v, want 2 entries", args)
	}
}

func TestParseFlags_ShortForms(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"taskconv", "-i", "-q", "-c", "cfg.yaml"})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if !flags.interactive {
		t.Error("-i did not set interactive")
	}
	if !flags.quiet {
		t.Error("-q did not set quiet")
	}
	if flags.config != "cfg.yaml" {
		t.Errorf("config = %q, want cfg.yaml", flags.config)
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"taskconv", "--bogus"}); err == nil {
		t.Error("parseFlags() expected an error for an unknown flag")
	}
}
