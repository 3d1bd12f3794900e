package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"quizcheck/internal/config"
	"quizcheck/internal/quiz"
	"quizcheck/internal/scan"
)

// session is the resolved state shared by the checking commands.
type session struct {
	cfg  config.Config
	opts scan.Options
}

// schemaKindUsage rejects --schema for open-question targets.
const schemaKindUsage = "--schema applies to quiz files; give open-question roots their own schema in .quizcheck.yml"

// setupError is a config or schema problem found before any file is checked.
type setupError struct {
	subject string
	err     error
}

func (e *setupError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.subject, e.err)
}

func (e *setupError) Unwrap() error {
	return e.err
}

// reportSetupError prints a setup failure for the tree-wide commands.
func reportSetupError(stderr io.Writer, err error) {
	var setup *setupError
	if errors.As(err, &setup) {
		fmt.Fprintf(stderr, "Invalid %s:\n%v\n", setup.subject, setup.err)
		return
	}
	fmt.Fprintf(stderr, "Setup failed: %v\n", err)
}

// openSession resolves the config and the quiz schema for a tree-wide check.
func openSession(configPath, schemaPath string, common *commonFlags, stderr io.Writer) (session, error) {
	log := newLogger(stderr, common)
	cfg, err := resolveConfig(configPath, &log)
	if err != nil {
		return session{}, &setupError{subject: "config", err: err}
	}
	path := strings.TrimSpace(schemaPath)
	if path == "" {
		path = cfg.SchemaPath()
	}
	schema, err := compileSchema(path, &log)
	if err != nil {
		return session{}, err
	}
	return session{cfg: cfg, opts: scan.Options{Schema: schema, Logger: &log}}, nil
}

// fileOptions resolves what a single-file validation needs. The config only
// contributes the quiz schema, so it is not read when --schema is given or
// the file holds open questions.
func fileOptions(configPath, schemaPath string, kind quiz.Kind, common *commonFlags, stderr io.Writer) (scan.Options, error) {
	log := newLogger(stderr, common)
	opts := scan.Options{Logger: &log}
	path := strings.TrimSpace(schemaPath)
	if path == "" && kind == quiz.KindQuiz {
		cfg, err := resolveConfig(configPath, &log)
		if err != nil {
			return opts, &setupError{subject: "config", err: err}
		}
		path = cfg.SchemaPath()
	}
	schema, err := compileSchema(path, &log)
	if err != nil {
		return opts, err
	}
	opts.Schema = schema
	return opts, nil
}

// useRoots replaces the configured roots with dirs taken from the command line.
func (s *session) useRoots(kind quiz.Kind, dirs ...string) {
	s.cfg.BaseDir = ""
	s.cfg.Roots = make([]config.Root, 0, len(dirs))
	for _, dir := range dirs {
		s.cfg.Roots = append(s.cfg.Roots, config.Root{Path: dir, Kind: kind})
	}
}

// resolveConfig loads the config at configPath, or searches upward from the
// working directory. Without a config file the default layout applies.
func resolveConfig(configPath string, log *zerolog.Logger) (config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		log.Debug().Str("config", abs).Msg("loading config")
		return config.Load(abs)
	}

	found, err := config.FindConfigPath("")
	if errors.Is(err, config.ErrNotFound) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return config.Config{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		log.Debug().Str("base_dir", wd).Msg("no config file, using default roots")
		return config.Default(wd), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	log.Debug().Str("config", found).Msg("loading config")
	return config.Load(found)
}

// compileSchema compiles the schema at path. An empty path means no schema.
func compileSchema(path string, log *zerolog.Logger) (*quiz.Schema, error) {
	if path == "" {
		return nil, nil
	}
	schema, err := quiz.CompileSchema(path)
	if err != nil {
		return nil, &setupError{subject: "schema", err: err}
	}
	log.Debug().Str("schema", path).Msg("schema compiled")
	return schema, nil
}
