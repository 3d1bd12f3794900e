package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"quizcheck/internal/quiz"
	"quizcheck/internal/report"
	"quizcheck/internal/scan"
)

// runValidate implements the validate command.
func runValidate(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags, common := newFlagSet(cmd, stderr)
	kindName := flags.String("kind", string(quiz.KindQuiz), "Record shape: quiz or open")
	schemaPath := flags.String("schema", "", "JSON Schema applied after the built-in checks")
	configPath := flags.String("config", "", "Path to .quizcheck.yml (default: search upward)")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}
	if flags.NArg() != 1 {
		return usageError(cmd, stderr, "expected exactly one file or directory, got %d arguments", flags.NArg())
	}
	kind, err := quiz.ParseKind(*kindName)
	if err != nil {
		return usageError(cmd, stderr, "invalid arguments: %v", err)
	}
	if kind == quiz.KindOpen && strings.TrimSpace(*schemaPath) != "" {
		return usageError(cmd, stderr, schemaKindUsage)
	}

	target := flags.Arg(0)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		sess, err := openSession(*configPath, *schemaPath, common, stderr)
		if err != nil {
			reportSetupError(stderr, err)
			return ExitError
		}
		sess.useRoots(kind, target)
		return checkTree(sess, common, stdout, stderr)
	}

	fmt.Fprintln(stdout, report.StartLine(target))
	failures := report.NewPalette(stderr, common.noColor)
	opts, err := fileOptions(*configPath, *schemaPath, kind, common, stderr)
	if err == nil {
		_, err = scan.CheckFile(target, kind, opts)
	}
	if err != nil {
		report.WriteFailure(stderr, failures, err)
		return ExitError
	}
	fmt.Fprintln(stdout, report.NewPalette(stdout, common.noColor).Apply(report.StyleOK, report.SuccessLine))
	return ExitOK
}
