package quiz

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"quizcheck/internal/jsondoc"
)

// Schema is a compiled JSON Schema applied after the built-in checks.
type Schema struct {
	path     string
	compiled *jsonschema.Schema
}

// CompileSchema loads and compiles the schema document at path.
func CompileSchema(path string) (*Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve schema path: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile("file://" + filepath.ToSlash(abs))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{path: path, compiled: compiled}, nil
}

// Path returns the schema location as given to CompileSchema.
func (s *Schema) Path() string {
	return s.path
}

// Check validates doc against the schema, returning a *SchemaError on mismatch.
func (s *Schema) Check(doc jsondoc.Value) error {
	err := s.compiled.Validate(doc.Interface())
	if err == nil {
		return nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return &CriticalError{Op: "apply schema", Err: err}
	}
	issues := leafIssues(validationErr, nil)
	sort.Strings(issues)
	return &SchemaError{Schema: s.path, Issues: issues}
}

// leafIssues flattens the innermost causes, which carry the specific messages.
func leafIssues(err *jsonschema.ValidationError, out []string) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return append(out, fmt.Sprintf("%s: %s", location, err.Message))
	}
	for _, cause := range err.Causes {
		out = leafIssues(cause, out)
	}
	return out
}
