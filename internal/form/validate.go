package form

import (
	"fmt"
	"strings"

	"github.com/lshigami/Sunbittern/internal/model"
)

// CleanedAnswer is one question's validated answer. A zero Value means the
// question was left unanswered; persistence substitutes the no-response
// sentinel. Choices holds the selected choices for score computation.
type CleanedAnswer struct {
	QuestionID uint
	Value      string
	Choices    []model.Choice
}

// CleanedAnswers maps question id to its validated answer. Validate returns
// one entry for every question of the survey.
type CleanedAnswers map[uint]CleanedAnswer

// FieldError describes a validation failure on one field.
type FieldError struct {
	Key        string `json:"key"`
	QuestionID uint   `json:"question_id"`
	Message    string `json:"message"`
}

// ValidationError aggregates all field failures of one submission. A
// submission that produces a ValidationError must never reach persistence.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("question %d: %s", f.QuestionID, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate cleans raw input against every question of the survey. All field
// errors are collected so the form can be re-rendered with each offending
// field annotated.
func Validate(survey *model.Survey, in RawInput) (CleanedAnswers, error) {
	cleaned := make(CleanedAnswers, len(survey.Questions))
	var verr ValidationError
	for i := range survey.Questions {
		q := &survey.Questions[i]
		h := variantFor(q.Type)
		if h == nil {
			return nil, fmt.Errorf("question %d has unknown type %d", q.ID, q.Type)
		}
		answer, ferr := h.clean(q, in)
		if ferr != nil {
			verr.Fields = append(verr.Fields, *ferr)
			continue
		}
		cleaned[q.ID] = answer
	}
	if len(verr.Fields) > 0 {
		return nil, &verr
	}
	return cleaned, nil
}

// Score computes the total weighted score of a validated submission.
// Unanswered questions and unscored types contribute zero.
func Score(survey *model.Survey, answers CleanedAnswers) float64 {
	total := 0.0
	for i := range survey.Questions {
		q := &survey.Questions[i]
		h := variantFor(q.Type)
		if h == nil {
			continue
		}
		total += h.score(q, answers[q.ID])
	}
	return total
}
