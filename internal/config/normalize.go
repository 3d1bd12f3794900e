package config

import (
	"strings"

	"quizcheck/internal/quiz"
)

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.Schema = strings.TrimSpace(cfg.Schema)
	if cfg.SkipPrefix == "" {
		cfg.SkipPrefix = DefaultSkipPrefix
	}
	for i := range cfg.Roots {
		cfg.Roots[i].Path = strings.TrimSpace(cfg.Roots[i].Path)
		cfg.Roots[i].Schema = strings.TrimSpace(cfg.Roots[i].Schema)
		kind := quiz.Kind(strings.ToLower(strings.TrimSpace(string(cfg.Roots[i].Kind))))
		if kind == "" {
			kind = quiz.KindQuiz
		}
		cfg.Roots[i].Kind = kind
	}
}
