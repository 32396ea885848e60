package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// audioFallbackInput binds the primary placeholder when the user supplied
// only a recording and no text.
const audioFallbackInput = "The main content for this prompt is provided in the attached audio file."

// Values carries the user-supplied field values for one invocation.
type Values struct {
	Input          string
	SecondaryInput string
	Language       string
	QuestionCount  int
}

// MissingRequiredInputError reports a declared field the user left empty.
// It blocks dispatch entirely; nothing is sent upstream.
type MissingRequiredInputError struct {
	Field string
}

func (e *MissingRequiredInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// Resolve binds user-supplied values into the template's instruction pattern
// and returns the final instruction text. Every occurrence of a placeholder
// is substituted; substitution is purely textual, so callers must ensure
// values cannot be confused with template syntax.
//
// A declared primary field is satisfied by text, an attached image, or
// attached audio. A declared secondary field must be non-empty text.
func Resolve(t Template, v Values, hasImage, hasAudio bool) (string, error) {
	final := t.Pattern

	if t.InputLabel != "" {
		input := strings.TrimSpace(v.Input)
		if input == "" && !hasImage && !hasAudio {
			return "", &MissingRequiredInputError{Field: t.InputLabel}
		}
		if input == "" && hasAudio {
			input = audioFallbackInput
		}
		final = strings.ReplaceAll(final, "{{input}}", input)
	}

	if t.SecondaryInputLabel != "" {
		if strings.TrimSpace(v.SecondaryInput) == "" {
			return "", &MissingRequiredInputError{Field: t.SecondaryInputLabel}
		}
		final = strings.ReplaceAll(final, "{{secondary_input}}", v.SecondaryInput)
	}

	if t.QuestionCountLabel != "" {
		count := v.QuestionCount
		if count <= 0 {
			count = t.DefaultQuestionCount
		}
		final = strings.ReplaceAll(final, "{{question_count}}", strconv.Itoa(count))
	}

	if t.RequestsLanguageSelector {
		lang := v.Language
		if lang == "" {
			lang = DefaultLanguage
		}
		final = strings.ReplaceAll(final, "{{language}}", lang)
	}

	return final, nil
}
