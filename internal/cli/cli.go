package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/designspace/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// fixedFlags collects repeated -fixed id=value pairs.
type fixedFlags map[string]string

func (f fixedFlags) String() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (f fixedFlags) Set(s string) error {
	id, value, ok := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return fmt.Errorf("expected id=value, got %q", s)
	}
	f[id] = value
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("designgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
designgen - Generate random designs from a declarative parameter space.

Usage:
  designgen [options] [SPACE_PATH]

Arguments:
  SPACE_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	fixed := fixedFlags{}
	spaceFlag := flagSet.String("space", "", "Path to the space file or directory.")
	sFlag := flagSet.String("s", "", "Path to the space file or directory (shorthand).")
	countFlag := flagSet.Int("count", 1, "Number of designs to generate.")
	seedFlag := flagSet.String("seed", "", "Seed for reproducible generation. Empty seeds from the system.")
	flagSet.Var(fixed, "fixed", "Fix a param to a value, as id=value. Repeatable.")
	paramFlag := flagSet.String("param", "", "Print a single generated value for this param ID instead of whole designs.")
	formatFlag := flagSet.String("format", "hcl", "Output format. Options: 'hcl', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *spaceFlag != "" {
		path = *spaceFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Space path determined.", "path", path)

	if path == "" {
		slog.Debug("No space path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	var seed *uint64
	if *seedFlag != "" {
		v, err := strconv.ParseUint(*seedFlag, 10, 64)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid seed %q: must be an unsigned integer", *seedFlag)}
		}
		seed = &v
	}

	config, err := app.NewConfig(app.Config{
		SpacePath: path,
		Count:     *countFlag,
		Seed:      seed,
		Fixed:     fixed,
		Param:     *paramFlag,
		Format:    strings.ToLower(*formatFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
