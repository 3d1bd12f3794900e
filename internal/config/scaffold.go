package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

# JSON Schema applied to quiz roots after the built-in checks, relative to
# this file. A root may set its own "schema" instead.
# schema: "schema.json"

# Directories whose name starts with this prefix are skipped.
skip_prefix: "_"

roots:
  - path: "quizzes"
    kind: quiz
  - path: "open-questions"
    kind: open
`

// Scaffold writes the default config to path. It never overwrites.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
