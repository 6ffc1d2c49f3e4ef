// Command procbench times repeated open/read/close cycles against a kernel
// pseudo-file, /proc/stat by default.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dl/procbench/internal/cli"
	"github.com/dl/procbench/internal/input"
)

func main() {
	os.Exit(execute(append(cli.LoadConfigArgs(), os.Args[1:]...)))
}

// execute parses args and runs the benchmark, returning the exit code.
// Config-file arguments come first so the command line overrides them.
func execute(args []string) int {
	cfg := cli.DefaultConfig()
	code := cli.ExitOK
	cmd := newRootCmd(&cfg, func(c cli.Config) int {
		code = cli.Run(c)
		return code
	})
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		return cli.ExitUsage
	}
	return code
}

func newRootCmd(cfg *cli.Config, run func(cli.Config) int) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "procbench",
		Short: "Time repeated open/read/close cycles of a procfs file",
		Long: `procbench opens a pseudo-file, reads it to end-of-stream and closes it,
--count times in a row. The first I/O error stops the run.

Defaults are read from $` + cli.ConfigPathEnv + ` or ~/.procbench, one flag per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			mode, err := parseColor(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			run(*cfg)
			return nil
		},
	}
	bindFlags(cmd.Flags(), cfg, &color)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *cli.Config, color *string) {
	fs.StringVarP(&cfg.Path, "path", "p", cfg.Path, "pseudo-file to sample")
	fs.IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of open/read/close cycles")
	fs.StringVarP(&cfg.Backend, "backend", "b", cfg.Backend, "I/O backend: "+strings.Join(input.Backends(), ", "))
	fs.IntVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "initial capacity of each cycle's buffer")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "echo each read to stdout as text")
	fs.StringVarP(&cfg.Report, "report", "r", cfg.Report, "run report: none, text, json")
	fs.StringVar(color, "color", "auto", "color the text report: auto, always, never")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
}

func parseColor(s string) (cli.ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return cli.ColorAuto, nil
	case "always":
		return cli.ColorAlways, nil
	case "never":
		return cli.ColorNever, nil
	default:
		return cli.ColorAuto, fmt.Errorf("invalid color mode %q", s)
	}
}
