//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIs asserts the exact exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) stdoutContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) stderrContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) stderrDoesNotContain(text string) error {
	if strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr not to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

// stderrIsExactly compares stderr line by line with the doc string.
func (s *featureState) stderrIsExactly(body *godog.DocString) error {
	got := strings.TrimRight(s.stderr.String(), "\n")
	if got != body.Content {
		return fmt.Errorf("unexpected stderr:\n%s\nwant:\n%s", got, body.Content)
	}
	return nil
}
