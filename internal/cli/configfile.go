package cli

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "PROCBENCH_CONFIG_PATH"

// LoadConfigArgs reads the procbench config file and returns parsed arguments.
// Config file location: PROCBENCH_CONFIG_PATH env var, or ~/.procbench.
// Format: one flag per line (--count=1000), # comments, empty lines ignored.
// Returns nil if no config file found.
func LoadConfigArgs() []string {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".procbench")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	return parseConfigArgs(f)
}

func parseConfigArgs(r io.Reader) []string {
	var args []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}
