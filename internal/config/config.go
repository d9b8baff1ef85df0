// Package config loads conversion defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-taskconv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidField   = errors.New("invalid config field")
)

// Field bounds.
const (
	MaxTitleLength = 200
	MaxIndentWidth = 16
	MaxWorkers     = 64
)

// Config holds defaults for conversions run through the CLI.
type Config struct {
	Title     string       `yaml:"title"`     // document title for OPML head and HTML <title>
	NoteStyle string       `yaml:"noteStyle"` // "subitem" or "inline"
	Text      TextConfig   `yaml:"text"`
	Output    OutputConfig `yaml:"output"`
	Workers   int          `yaml:"workers"` // batch pool size, 0 = auto
}

// TextConfig tunes the plain-text parser.
type TextConfig struct {
	IndentWidth int `yaml:"indentWidth"` // spaces per nesting level (default 4)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // batch output directory (empty = input directory)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:     "Task List",
		NoteStyle: "subitem",
		Text:      TextConfig{IndentWidth: 4},
	}
}

// LoadConfig loads configuration from a file path, layering it over the
// defaults. Returns an error if the file is missing or invalid; there is
// no silent fallback.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for consumers that construct Config manually.
func (c *Config) Validate() error {
	if len(c.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidField, MaxTitleLength)
	}
	switch c.NoteStyle {
	case "", "subitem", "inline":
		// valid
	default:
		return fmt.Errorf("%w: noteStyle %q (must be subitem or inline)", ErrInvalidField, c.NoteStyle)
	}
	if c.Text.IndentWidth < 0 || c.Text.IndentWidth > MaxIndentWidth {
		return fmt.Errorf("%w: text.indentWidth %d (must be 0-%d)", ErrInvalidField, c.Text.IndentWidth, MaxIndentWidth)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be 0-%d)", ErrInvalidField, c.Workers, MaxWorkers)
	}
	return nil
}
