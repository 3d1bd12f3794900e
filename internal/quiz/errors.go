package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("JSON non valido: %v", err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// ShapeError reports a top-level value that is not a usable array.
type ShapeError struct {
	Message string
}

func (err *ShapeError) Error() string {
	return err.Message
}

// RecordError reports every violation found on the first invalid record.
type RecordError struct {
	Index      int
	Violations []Violation
}

// Messages returns the violation messages in detection order.
func (err *RecordError) Messages() []string {
	messages := make([]string, 0, len(err.Violations))
	for _, violation := range err.Violations {
		messages = append(messages, violation.Message)
	}
	return messages
}

func (err *RecordError) Error() string {
	return fmt.Sprintf("domanda #%d: %s", err.Index, strings.Join(err.Messages(), "; "))
}

// CriticalError wraps file access and other unexpected failures.
type CriticalError struct {
	Op  string
	Err error
}

func (err *CriticalError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *CriticalError) Unwrap() error {
	return err.Err
}

// SchemaError reports a document rejected by a JSON Schema.
type SchemaError struct {
	Schema string
	Issues []string
}

func (err *SchemaError) Error() string {
	return fmt.Sprintf("schema %s non rispettato: %s", err.Schema, strings.Join(err.Issues, "; "))
}

// Failure classifies an error for reporting.
type Failure int

const (
	FailureNone Failure = iota
	FailureParse
	FailureShape
	FailureRecord
	FailureSchema
	FailureCritical
)

// String returns a stable name for the failure kind.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureParse:
		return "parse"
	case FailureShape:
		return "shape"
	case FailureRecord:
		return "record"
	case FailureSchema:
		return "schema"
	default:
		return "critical"
	}
}

// FailureOf classifies err. Unrecognized errors are critical.
func FailureOf(err error) Failure {
	if err == nil {
		return FailureNone
	}
	var parseErr *ParseError
	var shapeErr *ShapeError
	var recordErr *RecordError
	var schemaErr *SchemaError
	switch {
	case errors.As(err, &recordErr):
		return FailureRecord
	case errors.As(err, &shapeErr):
		return FailureShape
	case errors.As(err, &parseErr):
		return FailureParse
	case errors.As(err, &schemaErr):
		return FailureSchema
	default:
		return FailureCritical
	}
}
