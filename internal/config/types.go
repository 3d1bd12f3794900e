package config

import "quizcheck/internal/quiz"

// Config is the .quizcheck.yml schema.
type Config struct {
	Version    int    `yaml:"version"`
	Schema     string `yaml:"schema"`
	SkipPrefix string `yaml:"skip_prefix"`
	Roots      []Root `yaml:"roots"`

	// BaseDir is the directory relative paths resolve against.
	BaseDir string `yaml:"-"`
}

// Root is a directory tree of quiz files sharing one record kind.
type Root struct {
	Path string    `yaml:"path"`
	Kind quiz.Kind `yaml:"kind"`

	// Schema overrides the top-level schema for this root only.
	Schema string `yaml:"schema"`
}

// DefaultSkipPrefix marks directories that are never walked.
const DefaultSkipPrefix = "_"

// Default returns the layout used when no config file exists.
func Default(baseDir string) Config {
	return Config{
		Version:    1,
		SkipPrefix: DefaultSkipPrefix,
		Roots: []Root{
			{Path: "quizzes", Kind: quiz.KindQuiz},
			{Path: "open-questions", Kind: quiz.KindOpen},
		},
		BaseDir: baseDir,
	}
}

// Resolve joins a config-relative path with BaseDir.
func (cfg Config) Resolve(path string) string {
	return resolveAgainst(cfg.BaseDir, path)
}

// RootSchemaPath returns the resolved schema for files under root: its own
// schema when set, else the top-level schema for quiz roots. Open-question
// roots never inherit the top-level schema.
func (cfg Config) RootSchemaPath(root Root) string {
	if root.Schema != "" {
		return cfg.Resolve(root.Schema)
	}
	if root.Kind == quiz.KindQuiz {
		return cfg.SchemaPath()
	}
	return ""
}

// SchemaPath returns the resolved top-level schema path, or "" when none is
// configured. It applies to quiz roots only.
func (cfg Config) SchemaPath() string {
	if cfg.Schema == "" {
		return ""
	}
	return cfg.Resolve(cfg.Schema)
}
