package main

import (
	"testing"

	"github.com/dl/procbench/internal/cli"
)

func parse(t *testing.T, args ...string) (cli.Config, bool, error) {
	t.Helper()
	cfg := cli.DefaultConfig()
	var got cli.Config
	ran := false
	cmd := newRootCmd(&cfg, func(c cli.Config) int {
		got = c
		ran = true
		return cli.ExitOK
	})
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return got, ran, err
}

func TestRootCmd_Defaults(t *testing.T) {
	got, ran, err := parse(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !ran {
		t.Fatal("run was not called")
	}
	want := cli.DefaultConfig()
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	got, _, err := parse(t,
		"--path=/proc/meminfo", "-n", "7", "--backend", "uring",
		"--buffer-size=64", "-v", "--report=json", "--color=never", "--log-level=debug")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := cli.Config{
		Path:       "/proc/meminfo",
		Count:      7,
		Backend:    "uring",
		BufferSize: 64,
		Verbose:    true,
		Report:     "json",
		Color:      cli.ColorNever,
		LogLevel:   "debug",
	}
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestRootCmd_LaterFlagWins(t *testing.T) {
	// Config-file args are prepended, so the command line overrides them.
	got, _, err := parse(t, "--count=5", "--count=9")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got.Count != 9 {
		t.Errorf("Count = %d, want 9", got.Count)
	}
}

func TestRootCmd_Rejects(t *testing.T) {
	tests := [][]string{
		{"--color=sometimes"},
		{"--count=many"},
		{"positional"},
	}
	for _, args := range tests {
		_, ran, err := parse(t, args...)
		if err == nil {
			t.Errorf("%v: expected error", args)
		}
		if ran {
			t.Errorf("%v: run should not be called", args)
		}
	}
}

func TestExecute_UsageError(t *testing.T) {
	if code := execute([]string{"--no-such-flag"}); code != cli.ExitUsage {
		t.Errorf("execute() = %d, want %d", code, cli.ExitUsage)
	}
}
