package quiz

import (
	"strings"

	"quizcheck/internal/jsondoc"
)

// optionalOpenFields may be omitted, but must be strings when present.
var optionalOpenFields = []string{"referenceAnswer", "hint"}

// ValidateOpenQuestion checks one open-question record and returns every violation found.
func ValidateOpenQuestion(record jsondoc.Value) (OpenQuestion, []Violation) {
	if record.Kind != jsondoc.Object {
		return OpenQuestion{}, []Violation{{Field: "", Message: "la domanda deve essere un oggetto"}}
	}
	collector := &violationCollector{}
	question := OpenQuestion{}

	textValue, present := record.Field("text")
	if !present {
		collector.add("text", "Campo mancante: text")
	} else if text, ok := textValue.StringValue(); !ok || strings.TrimSpace(text) == "" {
		collector.add("text", "text deve essere una stringa non vuota")
	} else {
		question.Text = text
	}

	for _, field := range optionalOpenFields {
		value, present := record.Field(field)
		if !present {
			continue
		}
		text, ok := value.StringValue()
		if !ok {
			collector.add(field, field+" deve essere una stringa")
			continue
		}
		switch field {
		case "referenceAnswer":
			question.ReferenceAnswer = text
		case "hint":
			question.Hint = text
		}
	}

	if !collector.empty() {
		return OpenQuestion{}, collector.violations
	}
	return question, nil
}
