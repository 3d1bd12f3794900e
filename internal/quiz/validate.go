package quiz

import (
	"errors"
	"os"

	"quizcheck/internal/jsondoc"
)

// Shape error messages for the top-level value.
const (
	msgNotArray   = "Il file deve contenere un array di domande."
	msgEmptyArray = "L'array non può essere vuoto."
)

// ValidateFile reads path and validates its contents as a file of the given kind.
func ValidateFile(path string, kind Kind) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &CriticalError{Op: "read quiz file", Err: err}
	}
	return ValidateBytes(data, kind)
}

// ValidateBytes parses data as JSON and validates the parsed document.
func ValidateBytes(data []byte, kind Kind) (Result, error) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return Result{}, &ParseError{Err: err}
	}
	return Validate(doc, kind)
}

// Validate checks every record of doc in index order. It stops at the first
// record with violations and reports all violations of that record.
func Validate(doc jsondoc.Value, kind Kind) (Result, error) {
	records, ok := doc.ArrayValue()
	if !ok {
		return Result{}, &ShapeError{Message: msgNotArray}
	}
	result := Result{Kind: kind, Document: doc}
	switch kind {
	case KindQuiz:
		result.Questions = make([]Question, 0, len(records))
		for index, record := range records {
			question, violations := ValidateQuestion(record)
			if len(violations) > 0 {
				return Result{}, &RecordError{Index: index, Violations: violations}
			}
			result.Questions = append(result.Questions, question)
		}
	case KindOpen:
		if len(records) == 0 {
			return Result{}, &ShapeError{Message: msgEmptyArray}
		}
		result.OpenQuestions = make([]OpenQuestion, 0, len(records))
		for index, record := range records {
			question, violations := ValidateOpenQuestion(record)
			if len(violations) > 0 {
				return Result{}, &RecordError{Index: index, Violations: violations}
			}
			result.OpenQuestions = append(result.OpenQuestions, question)
		}
	default:
		return Result{}, &CriticalError{Op: "validate", Err: errors.New("unsupported kind " + string(kind))}
	}
	return result, nil
}
