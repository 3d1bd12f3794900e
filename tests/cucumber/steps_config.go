//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
)

// anEmptyWorkingDirectory moves the scenario into a new temp directory.
func (s *featureState) anEmptyWorkingDirectory() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "quizcheck-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// aQuizFileContaining writes a doc string to a path under the working directory.
func (s *featureState) aQuizFileContaining(name string, body *godog.DocString) error {
	return s.writeFile(name, body.Content)
}

// aValidQuizFileWithQuestions writes a quiz file with count well-formed questions.
func (s *featureState) aValidQuizFileWithQuestions(name string, count int) error {
	records := make([]string, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, fmt.Sprintf(`{"question":"Q%d","options":[{"text":"A","image":""},{"text":"B","image":""}],"correctIndex":%d,"image":"","code":"","explanation":"","hint":""}`, i+1, i%2))
	}
	return s.writeFile(name, "["+strings.Join(records, ",")+"]")
}

// aConfigFileContaining writes .quizcheck.yml in the working directory.
func (s *featureState) aConfigFileContaining(body *godog.DocString) error {
	return s.writeFile(".quizcheck.yml", body.Content)
}

// colorsAreDisabled sets NO_COLOR for the scenario.
func (s *featureState) colorsAreDisabled() error {
	return s.setEnv("NO_COLOR", "1")
}

func (s *featureState) writeFile(name, contents string) error {
	path := filepath.Join(s.workDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
