package scan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"quizcheck/internal/config"
	"quizcheck/internal/quiz"
)

const validQuiz = `[{"question":"Q1","options":[{"text":"A","image":""},{"text":"B","image":""}],"correctIndex":0,"image":"","code":"","explanation":"","hint":""}]`

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TestDiscoverSkipsPrefixedDirs verifies the skip prefix and extension filter.
func TestDiscoverSkipsPrefixedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.json"), "[]")
	writeFile(t, filepath.Join(root, "a", "c.json"), "[]")
	writeFile(t, filepath.Join(root, "_drafts", "d.json"), "[]")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")

	files, err := Discover(root, "_")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{filepath.Join(root, "a", "c.json"), filepath.Join(root, "b.json")}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("unexpected files: %q", files)
	}
}

// TestDiscoverMissingRoot verifies a missing root is not an error.
func TestDiscoverMissingRoot(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "nope"), "_")
	if err != nil || len(files) != 0 {
		t.Fatalf("expected no files and no error, got %q, %v", files, err)
	}
}

// TestCheckTreeContinuesPastFailures verifies every file is checked and counted.
func TestCheckTreeContinuesPastFailures(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "quizzes", "a.json"), validQuiz)
	writeFile(t, filepath.Join(base, "quizzes", "b.json"), "not json")
	writeFile(t, filepath.Join(base, "quizzes", "c.json"), validQuiz)
	writeFile(t, filepath.Join(base, "open-questions", "o.json"), `[{"text":"Spiega"}]`)

	summary, err := CheckTree(config.Default(base), Options{})
	if err != nil {
		t.Fatalf("check tree: %v", err)
	}
	if summary.Files() != 4 || summary.Failed() != 1 {
		t.Fatalf("expected 4 files and 1 failure, got %d and %d", summary.Files(), summary.Failed())
	}
	quizzes := summary.Roots[0].Files
	if quizzes[1].Path != filepath.Join("quizzes", "b.json") {
		t.Fatalf("unexpected display path %q", quizzes[1].Path)
	}
	if quiz.FailureOf(quizzes[1].Err) != quiz.FailureParse {
		t.Fatalf("expected parse failure, got %v", quizzes[1].Err)
	}
	if summary.Roots[1].Files[0].Kind != quiz.KindOpen || !summary.Roots[1].Files[0].OK() {
		t.Fatalf("expected open question file to pass: %+v", summary.Roots[1].Files[0])
	}
}

// TestCheckFileAppliesSchema verifies the schema runs after built-in checks.
func TestCheckFileAppliesSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	writeFile(t, schemaPath, `{"type":"array","maxItems":0}`)
	schema, err := quiz.CompileSchema(schemaPath)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	quizPath := filepath.Join(dir, "quiz.json")
	writeFile(t, quizPath, validQuiz)

	_, err = CheckFile(quizPath, quiz.KindQuiz, Options{Schema: schema})
	var schemaErr *quiz.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}

	badPath := filepath.Join(dir, "bad.json")
	writeFile(t, badPath, `[{}]`)
	_, err = CheckFile(badPath, quiz.KindQuiz, Options{Schema: schema})
	if quiz.FailureOf(err) != quiz.FailureRecord {
		t.Fatalf("expected built-in record failure first, got %v", err)
	}
}

// TestCheckTreeScopesSchemaByRoot verifies the quiz schema skips open-question
// roots and a root schema applies only to its own root.
func TestCheckTreeScopesSchemaByRoot(t *testing.T) {
	base := t.TempDir()
	quizSchemaPath := filepath.Join(base, "schema.json")
	writeFile(t, quizSchemaPath, `{"type":"array","items":{"required":["question","options"]}}`)
	writeFile(t, filepath.Join(base, "essay.schema.json"), `{"type":"array","maxItems":1}`)
	writeFile(t, filepath.Join(base, "quizzes", "a.json"), validQuiz)
	writeFile(t, filepath.Join(base, "open-questions", "b.json"), `[{"text":"Spiega"}]`)
	writeFile(t, filepath.Join(base, "essays", "c.json"), `[{"text":"Uno"},{"text":"Due"}]`)

	quizSchema, err := quiz.CompileSchema(quizSchemaPath)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	cfg := config.Config{
		Version:    1,
		Schema:     "schema.json",
		SkipPrefix: config.DefaultSkipPrefix,
		Roots: []config.Root{
			{Path: "quizzes", Kind: quiz.KindQuiz},
			{Path: "open-questions", Kind: quiz.KindOpen},
			{Path: "essays", Kind: quiz.KindOpen, Schema: "essay.schema.json"},
		},
		BaseDir: base,
	}

	summary, err := CheckTree(cfg, Options{Schema: quizSchema})
	if err != nil {
		t.Fatalf("check tree: %v", err)
	}
	if !summary.Roots[0].Files[0].OK() {
		t.Fatalf("expected quiz file to satisfy the quiz schema: %v", summary.Roots[0].Files[0].Err)
	}
	if !summary.Roots[1].Files[0].OK() {
		t.Fatalf("quiz schema must not apply to open questions: %v", summary.Roots[1].Files[0].Err)
	}
	var schemaErr *quiz.SchemaError
	if !errors.As(summary.Roots[2].Files[0].Err, &schemaErr) {
		t.Fatalf("expected the root schema to reject essays, got %v", summary.Roots[2].Files[0].Err)
	}
	if summary.Failed() != 1 {
		t.Fatalf("expected exactly one failure, got %d", summary.Failed())
	}
}

// TestCheckTreeBadRootSchema verifies an uncompilable root schema stops the check.
func TestCheckTreeBadRootSchema(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default(base)
	cfg.Roots[1].Schema = "missing.json"
	if _, err := CheckTree(cfg, Options{}); err == nil {
		t.Fatalf("expected error for missing root schema")
	}
}
