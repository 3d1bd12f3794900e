package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizcheck/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector []Issue

func (c *issueCollector) add(field, message string) {
	*c = append(*c, Issue{Field: field, Message: message})
}

func (c issueCollector) result() error {
	if len(c) == 0 {
		return nil
	}
	return &ValidationError{Issues: c}
}

// Validate checks a normalized config and the schema file it references.
func Validate(cfg *Config) error {
	var collector issueCollector

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.ContainsAny(cfg.SkipPrefix, `/\`) {
		collector.add("skip_prefix", "must not contain path separators")
	}

	if len(cfg.Roots) == 0 {
		collector.add("roots", "must include at least one entry")
	}
	seen := map[string]struct{}{}
	for i, root := range cfg.Roots {
		prefix := fmt.Sprintf("roots[%d]", i)
		if root.Path == "" {
			collector.add(prefix+".path", "is required")
		} else {
			key := filepath.Clean(root.Path)
			if _, exists := seen[key]; exists {
				collector.add(prefix+".path", fmt.Sprintf("duplicate path %q", root.Path))
			} else {
				seen[key] = struct{}{}
			}
		}
		if _, err := quiz.ParseKind(string(root.Kind)); err != nil {
			collector.add(prefix+".kind", fmt.Sprintf("unsupported kind %q", root.Kind))
		}
		checkSchemaFile(&collector, prefix+".schema", root.Schema, cfg.Resolve(root.Schema))
	}

	checkSchemaFile(&collector, "schema", cfg.Schema, cfg.SchemaPath())

	return collector.result()
}

// checkSchemaFile reports a configured schema that is missing or a directory.
func checkSchemaFile(collector *issueCollector, field, configured, resolved string) {
	if configured == "" {
		return
	}
	info, err := os.Stat(resolved)
	if err != nil {
		collector.add(field, fmt.Sprintf("schema not found at %q", configured))
	} else if info.IsDir() {
		collector.add(field, fmt.Sprintf("schema path %q is a directory", configured))
	}
}
