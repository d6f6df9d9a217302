// Package form builds per-survey input forms at runtime, validates raw
// submissions against each question's semantics, and computes the weighted
// score of a validated submission.
//
// Every question type is one variant of a closed set; a variant owns its
// field shape, its cleaning/validation rules, and its score contribution.
// New types are added by adding a variant, not by extending a conditional.
package form

import (
	"fmt"
	"strconv"

	"github.com/lshigami/Sunbittern/internal/model"
)

// Kind tells the rendering layer which widget a field expects.
type Kind string

const (
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindTextarea Kind = "textarea"
	KindText     Kind = "text"
	KindNumber   Kind = "number"
)

// Option is one selectable choice of a radio or checkbox field.
type Option struct {
	ChoiceID uint   `json:"choice_id"`
	Value    string `json:"value"`
}

// Field is the specification of one input. All fields are optional at the
// field level; cross-field constraints are enforced by Validate.
type Field struct {
	Key        string   `json:"key"`
	QuestionID uint     `json:"question_id"`
	Kind       Kind     `json:"kind"`
	Label      string   `json:"label"`
	HelpText   string   `json:"help_text,omitempty"`
	Page       int      `json:"page"`
	Required   bool     `json:"required"`
	MaxLength  int      `json:"max_length,omitempty"`
	Options    []Option `json:"options,omitempty"`
}

// Spec is the ordered field set for one survey, one or more fields per
// question in question order. Specs are built per request and must never be
// cached across surveys.
type Spec struct {
	SurveyID uint    `json:"survey_id"`
	Fields   []Field `json:"fields"`
}

// RawInput is submitted form data: field key to submitted values. It is
// shaped like url.Values so both form posts and JSON bodies map onto it.
type RawInput map[string][]string

// Get returns the first value submitted under key, or "".
func (in RawInput) Get(key string) string {
	if vs := in[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// fieldKey is the input key of a single-field question.
func fieldKey(q *model.Question) string {
	return strconv.FormatUint(uint64(q.ID), 10)
}

// subFieldKey is the input key of one disposition sub-field.
func subFieldKey(q *model.Question, c *model.Choice) string {
	return fmt.Sprintf("%d:%s", q.ID, c.Value)
}

// Build constructs the form specification for a survey. Questions and their
// choices must already be loaded in their defined order.
func Build(survey *model.Survey) (*Spec, error) {
	spec := &Spec{SurveyID: survey.ID}
	for i := range survey.Questions {
		q := &survey.Questions[i]
		h := variantFor(q.Type)
		if h == nil {
			return nil, fmt.Errorf("question %d has unknown type %d", q.ID, q.Type)
		}
		spec.Fields = append(spec.Fields, h.fields(q)...)
	}
	return spec, nil
}

// variantFor maps a question type to its variant. Returns nil for a type
// outside the closed set.
func variantFor(t model.QuestionType) variant {
	switch t {
	case model.TrueFalse, model.MultipleChoice:
		return singleChoice{scored: true}
	case model.Range:
		return singleChoice{}
	case model.MultiSelect:
		return multiChoice{}
	case model.Text:
		return freeText{kind: KindTextarea}
	case model.External:
		return freeText{kind: KindText}
	case model.Disposition:
		return disposition{}
	}
	return nil
}
