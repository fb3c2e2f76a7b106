// Package config loads the command-line settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/vic/lambdaeval/pkg/reduce"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".lambdaeval.yaml"

// Config holds the CLI settings. Fields missing from the file keep their
// Default values.
type Config struct {
	MaxSteps    int    `yaml:"max_steps"`
	Trace       int    `yaml:"trace"`
	Stats       bool   `yaml:"stats"`
	HistoryFile string `yaml:"history_file"`
	Prompt      string `yaml:"prompt"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// ValidationError collects every problem found in a config file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(" ")
	}
	b.WriteString("is invalid:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() *Config {
	return &Config{
		MaxSteps:    reduce.DefaultMaxSteps,
		HistoryFile: ".lambdaeval_history",
		Prompt:      "λ> ",
	}
}

// Load reads path. A missing default file is not an error; a missing file
// that was asked for explicitly is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()
	return decode(file, absPath)
}

// Parse decodes a config from r, naming it path in errors.
func Parse(r io.Reader, path string) (*Config, error) {
	return decode(r, path)
}

func decode(r io.Reader, path string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	errs := ValidationError{Path: c.Path}
	if c.MaxSteps < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_steps must not be negative, got %d", c.MaxSteps))
	}
	if c.Trace < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("trace must not be negative, got %d", c.Trace))
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		errs.Issues = append(errs.Issues, "prompt must be a single line")
	}
	if len(errs.Issues) == 0 {
		return nil
	}
	slices.Sort(errs.Issues)
	return &errs
}
