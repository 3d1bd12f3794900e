package cli

import (
	"fmt"
	"io"
	"strings"

	"quizcheck/internal/quiz"
	"quizcheck/internal/report"
	"quizcheck/internal/scan"
)

// runCheck implements the check command.
func runCheck(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags, common := newFlagSet(cmd, stderr)
	kindName := flags.String("kind", string(quiz.KindQuiz), "Record shape for directory arguments: quiz or open")
	schemaPath := flags.String("schema", "", "JSON Schema applied after the built-in checks")
	configPath := flags.String("config", "", "Path to .quizcheck.yml (default: search upward)")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}
	kind, err := quiz.ParseKind(*kindName)
	if err != nil {
		return usageError(cmd, stderr, "invalid arguments: %v", err)
	}
	if flags.NArg() > 0 && kind == quiz.KindOpen && strings.TrimSpace(*schemaPath) != "" {
		return usageError(cmd, stderr, schemaKindUsage)
	}

	sess, err := openSession(*configPath, *schemaPath, common, stderr)
	if err != nil {
		reportSetupError(stderr, err)
		return ExitError
	}
	if flags.NArg() > 0 {
		sess.useRoots(kind, flags.Args()...)
	}
	return checkTree(sess, common, stdout, stderr)
}

// checkTree validates every configured root and prints the summary.
func checkTree(sess session, common *commonFlags, stdout, stderr io.Writer) int {
	summary, err := scan.CheckTree(sess.cfg, sess.opts)
	if err != nil {
		fmt.Fprintf(stderr, "Check failed: %v\n", err)
		return ExitError
	}
	report.WriteSummary(stdout, report.NewPalette(stdout, common.noColor), summary)
	if summary.Failed() > 0 {
		return ExitError
	}
	return ExitOK
}
