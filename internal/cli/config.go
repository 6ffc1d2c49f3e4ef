package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dl/procbench/internal/input"
	"github.com/dl/procbench/internal/output"
	"github.com/dl/procbench/internal/sampler"
)

// ColorMode controls when the text report is colored.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// Config holds all configuration for a procbench run.
type Config struct {
	Path       string
	Count      int
	Backend    string
	BufferSize int
	Verbose    bool   // echo each buffer to stdout as text
	Report     string // none, text or json
	Color      ColorMode
	LogLevel   string
}

// DefaultConfig returns the configuration of the plain benchmark: 100000
// cycles of /proc/stat with read(2) and no output.
func DefaultConfig() Config {
	return Config{
		Path:       sampler.DefaultPath,
		Count:      sampler.DefaultCount,
		Backend:    input.BackendRead,
		BufferSize: sampler.DefaultBufferSize,
		Report:     output.FormatNone,
		Color:      ColorAuto,
		LogLevel:   "warn",
	}
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("no path specified")
	}
	if c.Count < 0 {
		return fmt.Errorf("invalid count: %d", c.Count)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("invalid buffer size: %d", c.BufferSize)
	}
	if !slices.Contains(input.Backends(), strings.ToLower(c.Backend)) {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(input.Backends(), ", "))
	}
	switch strings.ToLower(c.Report) {
	case output.FormatNone, output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("unknown report format %q", c.Report)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
