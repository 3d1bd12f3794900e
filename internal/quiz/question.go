package quiz

import (
	"fmt"
	"math"
	"strconv"

	"quizcheck/internal/jsondoc"
)

// MinOptions is the smallest number of answer choices a question may offer.
const MinOptions = 2

// requiredFields lists the members every quiz question must carry, in report order.
var requiredFields = []string{"question", "options", "correctIndex", "image", "code", "explanation", "hint"}

// ValidateQuestion checks one quiz record and returns every violation found.
// The Question is only meaningful when no violations are returned.
func ValidateQuestion(record jsondoc.Value) (Question, []Violation) {
	if record.Kind != jsondoc.Object {
		return Question{}, []Violation{{Field: "", Message: "la domanda deve essere un oggetto"}}
	}
	collector := &violationCollector{}

	for _, field := range requiredFields {
		if !record.Has(field) {
			collector.add(field, "Campo mancante: "+field)
		}
	}

	question := Question{}
	question.Image, _ = record.Field("image")
	question.Code, _ = record.Field("code")
	question.Explanation, _ = record.Field("explanation")
	question.Hint, _ = record.Field("hint")

	prompt, _ := record.Field("question")
	if text, ok := prompt.StringValue(); ok {
		question.Prompt = text
	} else {
		collector.add("question", "question deve essere una stringa")
	}

	correctValue, _ := record.Field("correctIndex")
	correctIndex, isNumber := correctValue.NumberValue()
	if !isNumber {
		collector.add("correctIndex", "correctIndex deve essere un numero")
	} else if math.Trunc(correctIndex) != correctIndex {
		collector.add("correctIndex", "correctIndex deve essere un intero")
	} else if !math.IsInf(correctIndex, 0) {
		question.CorrectIndex = int(correctIndex)
	}

	optionsValue, _ := record.Field("options")
	options, isArray := optionsValue.ArrayValue()
	if !isArray || len(options) < MinOptions {
		collector.add("options", fmt.Sprintf("options deve essere un array con almeno %d risposte", MinOptions))
	}
	if isArray {
		question.Options = make([]Option, 0, len(options))
		for i, optionValue := range options {
			question.Options = append(question.Options, validateOption(i, optionValue, collector))
		}
	}

	if isNumber && (correctIndex < 0 || (isArray && correctIndex >= float64(len(options)))) {
		collector.add("correctIndex", fmt.Sprintf("correctIndex (%s) fuori range per %d opzioni", formatNumber(correctIndex), len(options)))
	}

	if !collector.empty() {
		return Question{}, collector.violations
	}
	return question, nil
}

// validateOption checks the text and image members of one answer choice.
func validateOption(index int, value jsondoc.Value, collector *violationCollector) Option {
	prefix := fmt.Sprintf("options[%d]", index)
	option := Option{}

	text, _ := value.Field("text")
	if s, ok := text.StringValue(); ok {
		option.Text = s
	} else {
		collector.add(prefix+".text", fmt.Sprintf("opzione %d testo non valido", index))
	}

	image, _ := value.Field("image")
	if s, ok := image.StringValue(); ok {
		option.Image = s
	} else {
		collector.add(prefix+".image", fmt.Sprintf("opzione %d immagine non valida", index))
	}
	return option
}

func formatNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
