package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizcheck/internal/report"
	"quizcheck/internal/scan"
	"quizcheck/internal/ui/browse"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = report.IsTerminal

// runBrowse implements the browse command.
func runBrowse(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags, common := newFlagSet(cmd, stderr)
	schemaPath := flags.String("schema", "", "JSON Schema applied after the built-in checks")
	configPath := flags.String("config", "", "Path to .quizcheck.yml (default: search upward)")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}
	if !isTerminal(stdout) {
		fmt.Fprintln(stderr, "browse requires an interactive terminal; use \"quizcheck check\" instead")
		return ExitError
	}

	sess, err := openSession(*configPath, *schemaPath, common, stderr)
	if err != nil {
		reportSetupError(stderr, err)
		return ExitError
	}
	summary, err := scan.CheckTree(sess.cfg, sess.opts)
	if err != nil {
		fmt.Fprintf(stderr, "Check failed: %v\n", err)
		return ExitError
	}

	noColor := common.noColor || !report.ShouldUseStyling(stdout)
	program := tea.NewProgram(browse.NewModel(summary, browse.Options{NoColor: noColor}), tea.WithOutput(stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(stderr, "Browse failed: %v\n", err)
		return ExitError
	}
	if summary.Failed() > 0 {
		return ExitError
	}
	return ExitOK
}
