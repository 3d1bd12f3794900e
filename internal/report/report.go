package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"quizcheck/internal/config"
	"quizcheck/internal/quiz"
	"quizcheck/internal/scan"
)

// Fixed user-facing lines.
const (
	SuccessLine   = "✅ Validazione completata con successo!"
	NoFilesLine   = "  Nessun file trovato."
	failurePrefix = "❌ Errore critico nel file: "
)

// StartLine announces a single-file validation.
func StartLine(path string) string {
	return fmt.Sprintf("🔍 Validazione di: %s...", path)
}

// FailureLines renders an error as the lines printed for a single file. Record
// failures list the index and every violation; other kinds print one line.
func FailureLines(err error) []string {
	var recordErr *quiz.RecordError
	if errors.As(err, &recordErr) {
		lines := make([]string, 0, len(recordErr.Violations)+1)
		lines = append(lines, fmt.Sprintf("❌ Errore alla domanda #%d:", recordErr.Index))
		for _, message := range recordErr.Messages() {
			lines = append(lines, "   - "+message)
		}
		return lines
	}
	return []string{failurePrefix + err.Error()}
}

// WriteFailure prints FailureLines for err, coloring the first line.
func WriteFailure(w io.Writer, palette Palette, err error) {
	for i, line := range FailureLines(err) {
		if i == 0 {
			line = palette.Apply(StyleFail, line)
		}
		fmt.Fprintln(w, line)
	}
}

// Heading introduces the file list of one root.
func Heading(root config.Root) string {
	label := strings.TrimSuffix(root.Path, "/") + "/"
	if root.Kind == quiz.KindOpen {
		return fmt.Sprintf("📖 Domande aperte (%s):", label)
	}
	return fmt.Sprintf("📝 Quiz a risposta multipla (%s):", label)
}

// FileLine renders one directory-mode status line.
func FileLine(palette Palette, file scan.FileResult) string {
	if file.OK() {
		return "  " + palette.Apply(StyleOK, "✅ "+file.Path)
	}
	return "  " + palette.Apply(StyleFail, "❌ "+file.Path) + ": " + file.Err.Error()
}

// SummaryLine renders the closing line of a directory check.
func SummaryLine(files, failed int) string {
	return fmt.Sprintf("Verifica completata: %d file controllati, %d errori trovati.", files, failed)
}

// WriteSummary prints a whole-tree report: a heading per root, one line per
// file, and the closing count line.
func WriteSummary(w io.Writer, palette Palette, summary scan.Summary) {
	for i, root := range summary.Roots {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, palette.Apply(StyleHeading, Heading(root.Root)))
		if len(root.Files) == 0 {
			fmt.Fprintln(w, palette.Apply(StyleDim, NoFilesLine))
			continue
		}
		for _, file := range root.Files {
			fmt.Fprintln(w, FileLine(palette, file))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, SummaryLine(summary.Files(), summary.Failed()))
}

// Describe renders the full diagnostics of one file for interactive views.
func Describe(file scan.FileResult) []string {
	if file.OK() {
		return []string{
			"✅ " + file.Path,
			fmt.Sprintf("%d domande valide (%s)", file.Result.Count(), file.Kind),
		}
	}
	lines := []string{"❌ " + file.Path}
	return append(lines, FailureLines(file.Err)...)
}
