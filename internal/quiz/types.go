package quiz

import (
	"fmt"
	"strings"

	"quizcheck/internal/jsondoc"
)

// Kind selects which record shape a file is validated against.
type Kind string

const (
	// KindQuiz is a multiple-choice quiz file.
	KindQuiz Kind = "quiz"
	// KindOpen is an open-question file.
	KindOpen Kind = "open"
)

// ParseKind resolves a kind name, defaulting to KindQuiz when empty.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(KindQuiz):
		return KindQuiz, nil
	case string(KindOpen):
		return KindOpen, nil
	default:
		return "", fmt.Errorf("unsupported kind %q (expected quiz|open)", value)
	}
}

// Question is a multiple-choice record whose shape has been verified.
type Question struct {
	Prompt       string
	Options      []Option
	CorrectIndex int
	// Presence-checked only; any JSON type is accepted.
	Image       jsondoc.Value
	Code        jsondoc.Value
	Explanation jsondoc.Value
	Hint        jsondoc.Value
}

// Option is one answer choice of a Question.
type Option struct {
	Text  string
	Image string
}

// OpenQuestion is a free-text record whose shape has been verified.
type OpenQuestion struct {
	Text            string
	ReferenceAnswer string
	Hint            string
}

// Violation is a single failed check on a record.
type Violation struct {
	Field   string
	Message string
}

// Result holds the records of a file that passed validation.
type Result struct {
	Kind          Kind
	Document      jsondoc.Value
	Questions     []Question
	OpenQuestions []OpenQuestion
}

// Count returns the number of validated records.
func (r Result) Count() int {
	if r.Kind == KindOpen {
		return len(r.OpenQuestions)
	}
	return len(r.Questions)
}
