package scan

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"quizcheck/internal/config"
	"quizcheck/internal/quiz"
)

// FileResult is the outcome of validating one file.
type FileResult struct {
	// Path is the file location relative to the config base directory.
	Path   string
	Kind   quiz.Kind
	Result quiz.Result
	Err    error
}

// OK reports whether the file passed every check.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// RootReport collects the results for one configured root.
type RootReport struct {
	Root  config.Root
	Files []FileResult
}

// Summary is the outcome of a whole-tree check.
type Summary struct {
	Roots []RootReport
}

// Files returns the number of files checked.
func (s Summary) Files() int {
	total := 0
	for _, root := range s.Roots {
		total += len(root.Files)
	}
	return total
}

// Failed returns the number of files that did not pass.
func (s Summary) Failed() int {
	failed := 0
	for _, root := range s.Roots {
		for _, file := range root.Files {
			if !file.OK() {
				failed++
			}
		}
	}
	return failed
}

// Options configures CheckTree and CheckFile.
type Options struct {
	// Schema is applied by CheckFile to every file it accepts. CheckTree uses
	// it for quiz roots without a schema of their own.
	Schema *quiz.Schema
	Logger *zerolog.Logger
}

func (opts Options) logger() *zerolog.Logger {
	if opts.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return opts.Logger
}

// CheckFile validates one file and, when it passes, applies the schema.
func CheckFile(path string, kind quiz.Kind, opts Options) (quiz.Result, error) {
	log := opts.logger()
	result, err := quiz.ValidateFile(path, kind)
	if err != nil {
		log.Debug().Str("file", path).Str("failure", quiz.FailureOf(err).String()).Msg("file rejected")
		return quiz.Result{}, err
	}
	if opts.Schema != nil {
		if err := opts.Schema.Check(result.Document); err != nil {
			log.Debug().Str("file", path).Str("schema", opts.Schema.Path()).Msg("schema rejected file")
			return quiz.Result{}, err
		}
	}
	log.Debug().Str("file", path).Str("kind", string(kind)).Int("records", result.Count()).Msg("file accepted")
	return result, nil
}

// CheckTree validates every file under the configured roots. A failing file
// never stops the walk; a root that cannot be walked, or whose schema cannot
// be compiled, is returned as an error.
func CheckTree(cfg config.Config, opts Options) (Summary, error) {
	log := opts.logger()
	compiled := map[string]*quiz.Schema{}
	summary := Summary{Roots: make([]RootReport, 0, len(cfg.Roots))}
	for _, root := range cfg.Roots {
		rootOpts := opts
		schema, err := rootSchema(cfg, root, opts.Schema, compiled)
		if err != nil {
			return Summary{}, fmt.Errorf("root %s: %w", root.Path, err)
		}
		rootOpts.Schema = schema

		rootPath := cfg.Resolve(root.Path)
		files, err := Discover(rootPath, cfg.SkipPrefix)
		if err != nil {
			return Summary{}, err
		}
		log.Debug().Str("root", rootPath).Int("files", len(files)).Bool("schema", schema != nil).Msg("discovered quiz files")

		report := RootReport{Root: root, Files: make([]FileResult, 0, len(files))}
		for _, file := range files {
			result, err := CheckFile(file, root.Kind, rootOpts)
			report.Files = append(report.Files, FileResult{
				Path:   displayPath(rootPath, root.Path, file),
				Kind:   root.Kind,
				Result: result,
				Err:    err,
			})
		}
		summary.Roots = append(summary.Roots, report)
	}
	return summary, nil
}

// rootSchema picks the schema for one root: its own schema when configured,
// else quizSchema for quiz roots. Open-question roots get nothing by default.
func rootSchema(cfg config.Config, root config.Root, quizSchema *quiz.Schema, compiled map[string]*quiz.Schema) (*quiz.Schema, error) {
	if root.Schema == "" {
		if root.Kind == quiz.KindQuiz {
			return quizSchema, nil
		}
		return nil, nil
	}
	path := cfg.RootSchemaPath(root)
	if schema, ok := compiled[path]; ok {
		return schema, nil
	}
	schema, err := quiz.CompileSchema(path)
	if err != nil {
		return nil, err
	}
	compiled[path] = schema
	return schema, nil
}

// displayPath rewrites a discovered path relative to the root as configured.
func displayPath(rootPath, configured, file string) string {
	rel, err := filepath.Rel(rootPath, file)
	if err != nil || rel == "." {
		return configured
	}
	return filepath.Join(configured, rel)
}
