package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the config file searched for by FindConfigPath.
const ConfigFileName = ".quizcheck.yml"

// ErrNotFound indicates no config file exists in the directory chain.
var ErrNotFound = errors.New("config file not found")

// FindConfigPath returns the nearest ConfigFileName in startDir or one of its
// parents. An empty startDir means the working directory. The error wraps
// ErrNotFound when the search reaches the filesystem root.
func FindConfigPath(startDir string) (string, error) {
	start, err := filepath.Abs(strings.TrimSpace(startDir))
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	for dir := start; ; {
		candidate := filepath.Join(dir, ConfigFileName)
		switch info, err := os.Stat(candidate); {
		case err == nil && info.IsDir():
			return "", fmt.Errorf("config path %q is a directory", candidate)
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("stat config path %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s in %s or its parents: %w", ConfigFileName, start, ErrNotFound)
		}
		dir = parent
	}
}

func resolveAgainst(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, path)
}
