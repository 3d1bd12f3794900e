package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevelEnv overrides the default log level.
const LogLevelEnv = "QUIZCHECK_LOG_LEVEL"

// commonFlags are accepted by every command.
type commonFlags struct {
	verbose bool
	noColor bool
}

// newFlagSet returns a flag set for cmd with the common flags registered.
func newFlagSet(cmd *Command, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	common := &commonFlags{}
	flags.BoolVar(&common.verbose, "verbose", false, "Log debug details to stderr")
	flags.BoolVar(&common.noColor, "no-color", false, "Disable colored output")
	return flags, common
}

// parseFlags parses args for cmd. When ok is false the command must return code.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	err := flags.Parse(args)
	switch {
	case err == nil:
		return ExitOK, true
	case errors.Is(err, flag.ErrHelp):
		printCommandUsage(cmd, stdout)
		return ExitOK, false
	default:
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
}

// usageError reports a bad invocation of cmd.
func usageError(cmd *Command, stderr io.Writer, format string, args ...any) int {
	fmt.Fprintf(stderr, format+"\n", args...)
	printCommandUsage(cmd, stderr)
	return ExitUsage
}

// newLogger builds the run logger. Diagnostics never go through it.
func newLogger(stderr io.Writer, common *commonFlags) zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}
	if common.verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        stderr,
		NoColor:    common.noColor || os.Getenv("NO_COLOR") != "",
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
