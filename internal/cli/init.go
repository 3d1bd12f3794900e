package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizcheck/internal/config"
)

// runInit implements the init command.
func runInit(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags, _ := newFlagSet(cmd, stderr)
	configPath := flags.String("config", "", "Where to write the config (default: ./"+config.ConfigFileName+")")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}
	if flags.NArg() > 0 {
		return usageError(cmd, stderr, "unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	target := strings.TrimSpace(*configPath)
	if target == "" {
		target = config.ConfigFileName
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	if err := config.Scaffold(abs); err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Created %s\n", abs)
	return ExitOK
}
