package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dl/procbench/internal/input"
	"github.com/dl/procbench/internal/output"
	"github.com/dl/procbench/internal/sampler"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1 // an I/O error stopped the run
	ExitUsage   = 2 // invalid configuration
)

// Run executes the benchmark with the given config and returns the exit code.
func Run(cfg Config) int {
	return run(cfg, os.Stdout, os.Stderr)
}

func run(cfg Config, stdout *os.File, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		return ExitUsage
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	opener, err := input.NewOpener(cfg.Backend)
	if err != nil {
		logger.Error("backend unavailable", "backend", cfg.Backend, "err", err)
		return ExitFailure
	}
	if c, ok := opener.(io.Closer); ok {
		defer c.Close()
	}

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.IsTerminal(stdout.Fd())
	}

	formatter, err := output.NewFormatter(cfg.Report, useColor)
	if err != nil {
		logger.Error("invalid report format", "err", err)
		return ExitUsage
	}

	w := output.NewWriter(stdout.Fd())
	s := sampler.New(cfg.Path, cfg.Count, opener).WithBufferSize(cfg.BufferSize)
	if cfg.Verbose {
		s.WithSink(w.Echo)
	}

	runID := uuid.NewString()
	logger.Debug("sampling", "run", runID, "path", cfg.Path, "count", cfg.Count, "backend", cfg.Backend)

	stats, err := s.Run()
	if err != nil {
		logger.Error("sample failed", "cycle", stats.Cycles+1, "err", err)
		return ExitFailure
	}
	logger.Debug("done", "run", runID, "cycles", stats.Cycles, "bytes", stats.Bytes, "elapsed", stats.Elapsed)

	if formatter == nil {
		return ExitOK
	}
	report := output.Report{
		RunID:   runID,
		Path:    cfg.Path,
		Backend: cfg.Backend,
		Cycles:  stats.Cycles,
		Bytes:   stats.Bytes,
		Elapsed: stats.Elapsed,
	}
	if _, err := w.Write(formatter.Format(nil, report)); err != nil {
		logger.Error("write report", "err", err)
		return ExitFailure
	}
	return ExitOK
}
