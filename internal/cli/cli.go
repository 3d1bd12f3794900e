package cli

import (
	"fmt"
	"io"
	"strings"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one entry of the quizcheck command table.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(cmd *Command, args []string, stdout, stderr io.Writer) int
}

var commands = []*Command{
	{
		Name:    "validate",
		Summary: "Validate one quiz file",
		Usage: []string{
			"quizcheck validate [--kind quiz|open] [--schema <path>] <file>",
			"quizcheck validate [--kind quiz|open] <dir>",
		},
		Run: runValidate,
	},
	{
		Name:    "check",
		Summary: "Validate every quiz file under the configured roots",
		Usage: []string{
			"quizcheck check [--config <path>] [--schema <path>]",
			"quizcheck check [--kind quiz|open] <dir>...",
		},
		Run: runCheck,
	},
	{
		Name:    "browse",
		Summary: "Browse quiz files and their diagnostics interactively",
		Usage:   []string{"quizcheck browse [--config <path>] [--schema <path>]"},
		Run:     runBrowse,
	},
	{
		Name:    "init",
		Summary: "Scaffold .quizcheck.yml",
		Usage:   []string{"quizcheck init [--config <path>]"},
		Run:     runInit,
	},
}

// Run dispatches args to a command and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}

	name, rest := args[0], args[1:]
	switch name {
	case "-h", "--help":
		printUsage(stdout)
		return ExitOK
	case "help":
		return runHelp(rest, stdout, stderr)
	}

	cmd := lookup(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}
	if wantsHelp(rest) {
		printCommandUsage(cmd, stdout)
		return ExitOK
	}
	return cmd.Run(cmd, rest, stdout, stderr)
}

// runHelp prints the root usage, or one command's usage.
func runHelp(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitOK
	}
	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	printCommandUsage(cmd, stdout)
	return ExitOK
}

func lookup(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

// wantsHelp reports a help flag anywhere before a "--" terminator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "-help", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("Usage:\n  quizcheck <command> [options]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	b.WriteString("\nGlobal options: --verbose, --no-color\n")
	b.WriteString("Use \"quizcheck help <command>\" for more information.\n")
	io.WriteString(w, b.String())
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintf(w, "\n%s\n", cmd.Summary)
}
