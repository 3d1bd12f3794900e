package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizcheck/internal/quiz"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadConfigDefaults verifies defaults and base directory resolution.
func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `version: 1
roots:
  - path: " quizzes "
  - path: extra
    kind: OPEN
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SkipPrefix != DefaultSkipPrefix {
		t.Fatalf("expected default skip prefix, got %q", cfg.SkipPrefix)
	}
	if len(cfg.Roots) != 2 || cfg.Roots[0].Path != "quizzes" || cfg.Roots[0].Kind != quiz.KindQuiz {
		t.Fatalf("unexpected roots: %+v", cfg.Roots)
	}
	if cfg.Roots[1].Kind != quiz.KindOpen {
		t.Fatalf("expected open kind, got %q", cfg.Roots[1].Kind)
	}
	if got := cfg.Resolve("quizzes"); got != filepath.Join(dir, "quizzes") {
		t.Fatalf("unexpected resolved path %q", got)
	}
	if cfg.SchemaPath() != "" {
		t.Fatalf("expected no schema, got %q", cfg.SchemaPath())
	}
}

// TestLoadConfigReportsAllIssues verifies every problem is reported at once.
func TestLoadConfigReportsAllIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `version: 2
schema: missing.json
roots:
  - path: quizzes
  - path: quizzes/
    kind: essay
  - kind: quiz
`)
	_, err := Load(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fields = append(fields, issue.Field)
	}
	joined := strings.Join(fields, ",")
	for _, want := range []string{"version", "roots[1].path", "roots[1].kind", "roots[2].path", "schema"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected issue for %s, got %s", want, joined)
		}
	}
}

// TestLoadConfigRejectsUnknownFields verifies strict decoding.
func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: 1\nroot: quizzes\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

// TestLoadConfigSchemaExists verifies a present schema file validates.
func TestLoadConfigSchemaExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "schema.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	path := writeConfig(t, dir, "version: 1\nschema: schema.json\nroots:\n  - path: quizzes\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SchemaPath() != filepath.Join(dir, "schema.json") {
		t.Fatalf("unexpected schema path %q", cfg.SchemaPath())
	}
}

// TestRootSchemaPathByKind verifies the top-level schema only reaches quiz roots.
func TestRootSchemaPathByKind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"quiz.schema.json", "open.schema.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write schema: %v", err)
		}
	}
	path := writeConfig(t, dir, `version: 1
schema: quiz.schema.json
roots:
  - path: quizzes
    kind: quiz
  - path: open-questions
    kind: open
  - path: essays
    kind: open
    schema: open.schema.json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := []string{filepath.Join(dir, "quiz.schema.json"), "", filepath.Join(dir, "open.schema.json")}
	for i, root := range cfg.Roots {
		if got := cfg.RootSchemaPath(root); got != want[i] {
			t.Fatalf("root %s: expected schema %q, got %q", root.Path, want[i], got)
		}
	}
}

// TestLoadConfigMissingRootSchema verifies per-root schemas must exist.
func TestLoadConfigMissingRootSchema(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `version: 1
roots:
  - path: essays
    kind: open
    schema: missing.json
`)
	_, err := Load(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 1 || validationErr.Issues[0].Field != "roots[0].schema" {
		t.Fatalf("unexpected issues: %+v", validationErr.Issues)
	}
}

// TestFindConfigPathParent verifies discovery from nested directories.
func TestFindConfigPathParent(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: 1\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	want, _ := filepath.EvalSymlinks(path)
	got, _ := filepath.EvalSymlinks(found)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestFindConfigPathNotFound verifies the sentinel error when nothing exists.
func TestFindConfigPathNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), ConfigFileName)); err == nil {
		t.Skip("a config file exists above the temp dir")
	}
	_, err := FindConfigPath(dir)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestDefaultConfigValidates verifies the built-in layout passes validation.
func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default(t.TempDir())
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

// TestScaffoldWritesLoadableConfig verifies scaffolding and overwrite refusal.
func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if len(cfg.Roots) != 2 {
		t.Fatalf("expected two roots, got %+v", cfg.Roots)
	}
	if err := Scaffold(path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
}
