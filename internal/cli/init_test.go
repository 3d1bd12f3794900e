package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizcheck/internal/config"
)

// TestInitCommandCreatesConfig verifies the scaffold loads cleanly.
func TestInitCommandCreatesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Fatalf("expected created path, got %q", out.String())
	}
	if _, loadErr := config.Load(path); loadErr != nil {
		t.Fatalf("scaffolded config should load: %v", loadErr)
	}
}

// TestInitCommandDefaultsToWorkingDirectory verifies the default target.
func TestInitCommandDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var out, err bytes.Buffer
	if code := Run([]string{"init"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, config.ConfigFileName)); statErr != nil {
		t.Fatalf("expected config file to exist: %v", statErr)
	}
}

// TestInitCommandRefusesOverwrite verifies an existing file is left alone.
func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil || string(data) != "version: 1\n" {
		t.Fatalf("config was modified: %q (%v)", data, readErr)
	}
}

// TestInitCommandRejectsArguments verifies positional arguments are usage errors.
func TestInitCommandRejectsArguments(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"init", "extra"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
