package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	taskconv "github.com/alnah/go-taskconv"
	"github.com/alnah/go-taskconv/internal/config"
	"github.com/alnah/go-taskconv/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("usage: taskconv [flags] <input> <output>")
	ErrUnknownInputExt  = errors.New("cannot detect input format from extension (use --from)")
	ErrUnknownOutputExt = errors.New("cannot detect output format from extension (use --to)")
	ErrNoInputsFound    = errors.New("no convertible files found in input directory")
)

// run loads configuration, applies flag overrides, and dispatches to the
// interactive form, a batch run, or a single file conversion.
func run(flags *cliFlags, args []string, logger *log.Logger) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg, flags)

	opts := converterOptions(cfg, flags, logger)

	if flags.interactive {
		return runForm(opts)
	}

	if len(args) != 2 {
		return ErrInvalidArgs
	}
	inputPath, outputPath := args[0], args[1]

	if fileutil.IsDir(inputPath) {
		return runBatch(inputPath, outputPath, cfg, flags, opts, logger)
	}

	conv := taskconv.New(opts...)
	if err := convertFile(context.Background(), conv, inputPath, outputPath, flags.from, flags.to); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Printf("Created %s\n", outputPath)
	}
	return nil
}

// applyFlagOverrides layers explicit flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, flags *cliFlags) {
	if flags.title != "" {
		cfg.Title = flags.title
	}
	if flags.noteStyle != "" {
		cfg.NoteStyle = flags.noteStyle
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// converterOptions maps resolved config to library options.
func converterOptions(cfg *config.Config, flags *cliFlags, logger *log.Logger) []taskconv.Option {
	opts := []taskconv.Option{
		taskconv.WithTitle(cfg.Title),
		taskconv.WithNoteStyle(taskconv.NoteStyle(cfg.NoteStyle)),
		taskconv.WithIndentWidth(cfg.Text.IndentWidth),
	}
	if flags.verbose {
		opts = append(opts, taskconv.WithLogger(logger))
	}
	return opts
}

// convertFile converts one input file into one output file, written
// atomically so failures leave no partial output behind.
func convertFile(ctx context.Context, conv *taskconv.Converter, inputPath, outputPath, fromFlag, toFlag string) error {
	from, err := resolveInputFormat(fromFlag, inputPath)
	if err != nil {
		return err
	}
	to, err := resolveOutputFormat(toFlag, outputPath)
	if err != nil {
		return err
	}

	content, err := fileutil.ReadTextFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	result, err := conv.Convert(ctx, taskconv.Input{Content: content, From: from, To: to})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	return fileutil.AtomicWriteFile(outputPath, result.Output)
}

// runBatch discovers convertible files in inputDir and converts them into
// outputDir, bounded by a converter pool.
func runBatch(inputDir, outputDir string, cfg *config.Config, flags *cliFlags, opts []taskconv.Option, logger *log.Logger) error {
	to := flags.to
	if to == "" {
		to = string(taskconv.FormatOPML)
	}
	outExt := ".opml"
	if taskconv.Format(to) == taskconv.FormatHTML {
		outExt = ".html"
	}

	if cfg.Output.DefaultDir != "" && outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	inputs, err := discoverInputs(inputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoInputsFound, inputDir)
	}

	poolSize := taskconv.ResolvePoolSize(cfg.Workers)
	logger.Debug("starting batch", "files", len(inputs), "workers", poolSize)
	pool := taskconv.NewConverterPool(poolSize, opts...)

	ctx := context.Background()
	errs := make([]error, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			conv := pool.Acquire()
			defer pool.Release(conv)

			base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			output := filepath.Join(outputDir, base+outExt)
			if err := convertFile(ctx, conv, input, output, flags.from, to); err != nil {
				errs[i] = err
				return
			}
			logger.Info("converted", "input", input, "output", output)
		}(i, input)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// discoverInputs lists convertible files directly under dir, in name order.
func discoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := detectInputFormat(entry.Name()); err == nil {
			inputs = append(inputs, filepath.Join(dir, entry.Name()))
		}
	}
	return inputs, nil
}

// resolveInputFormat picks the explicit --from value or detects from the
// file extension.
func resolveInputFormat(fromFlag, path string) (taskconv.Format, error) {
	if fromFlag != "" {
		return taskconv.Format(fromFlag), nil
	}
	return detectInputFormat(path)
}

// resolveOutputFormat picks the explicit --to value or detects from the
// file extension.
func resolveOutputFormat(toFlag, path string) (taskconv.Format, error) {
	if toFlag != "" {
		return taskconv.Format(toFlag), nil
	}
	return detectOutputFormat(path)
}

func detectInputFormat(path string) (taskconv.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mht", ".mhtml":
		return taskconv.FormatMHT, nil
	case ".html", ".htm":
		return taskconv.FormatHTML, nil
	case ".opml", ".xml":
		return taskconv.FormatOPML, nil
	case ".txt", ".text":
		return taskconv.FormatText, nil
	case ".md", ".markdown":
		return taskconv.FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInputExt, filepath.Ext(path))
}

func detectOutputFormat(path string) (taskconv.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".opml", ".xml":
		return taskconv.FormatOPML, nil
	case ".html", ".htm":
		return taskconv.FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutputExt, filepath.Ext(path))
}
