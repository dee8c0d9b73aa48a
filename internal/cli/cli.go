// Package cli parses the flags shared by the gridpath commands and maps
// failures to process exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/internal/logging"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Usage exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Config holds the settings every command accepts.
type Config struct {
	// ScenarioPath is the scenario file; empty or "-" selects the default board.
	ScenarioPath string
	LogLevel     string
	LogFormat    string
}

// Default reports whether the default board was requested.
func (c *Config) Default() bool {
	return c.ScenarioPath == "" || c.ScenarioPath == "-"
}

// Parse processes args for the command name. extra, when non-nil,
// registers command specific flags before parsing. It returns the common
// Config, whether the program should exit cleanly (help was requested), or
// an *ExitError.
func Parse(name, summary string, args []string, output io.Writer, extra func(*flag.FlagSet)) (*Config, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "%s\n\nUsage:\n  %s [options] [SCENARIO]\n\n", summary, name)
		fmt.Fprint(output, "Arguments:\n  SCENARIO\n    Path to a .yaml, .yml or .hcl scenario file. Omit or use - for the default board.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	level := fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	format := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	if extra != nil {
		extra(fs)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("expected at most one scenario, got %d", fs.NArg())}
	}

	cfg := &Config{
		ScenarioPath: fs.Arg(0),
		LogLevel:     strings.ToLower(*level),
		LogFormat:    strings.ToLower(*format),
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if err := logging.CheckFormat(cfg.LogFormat); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	return cfg, false, nil
}
