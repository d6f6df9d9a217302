package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lshigami/Sunbittern/internal/model"
)

// variant is the capability set of one question type: field construction,
// input cleaning, and score contribution.
type variant interface {
	fields(q *model.Question) []Field
	clean(q *model.Question, in RawInput) (CleanedAnswer, *FieldError)
	score(q *model.Question, a CleanedAnswer) float64
}

// singleChoice covers TrueFalse, MultipleChoice and Range: one choice
// selected from the question's choices. Range renders the same way but is
// unscored.
type singleChoice struct {
	scored bool
}

func (v singleChoice) fields(q *model.Question) []Field {
	return []Field{{
		Key:        fieldKey(q),
		QuestionID: q.ID,
		Kind:       KindRadio,
		Label:      q.Text,
		HelpText:   q.Name,
		Page:       q.PageNumber,
		Options:    choiceOptions(q),
	}}
}

func (v singleChoice) clean(q *model.Question, in RawInput) (CleanedAnswer, *FieldError) {
	raw := in.Get(fieldKey(q))
	if raw == "" {
		return CleanedAnswer{QuestionID: q.ID}, nil
	}
	choice := choiceByID(q, raw)
	if choice == nil {
		return CleanedAnswer{}, invalidChoice(q)
	}
	return CleanedAnswer{
		QuestionID: q.ID,
		Value:      choice.Value,
		Choices:    []model.Choice{*choice},
	}, nil
}

func (v singleChoice) score(q *model.Question, a CleanedAnswer) float64 {
	if !v.scored || len(a.Choices) == 0 {
		return 0
	}
	return a.Choices[0].Weight
}

// multiChoice covers MultiSelect: any subset of the question's choices,
// each selected choice contributing its weight.
type multiChoice struct{}

func (v multiChoice) fields(q *model.Question) []Field {
	return []Field{{
		Key:        fieldKey(q),
		QuestionID: q.ID,
		Kind:       KindCheckbox,
		Label:      q.Text,
		HelpText:   q.Name,
		Page:       q.PageNumber,
		Options:    choiceOptions(q),
	}}
}

func (v multiChoice) clean(q *model.Question, in RawInput) (CleanedAnswer, *FieldError) {
	var selected []model.Choice
	for _, raw := range in[fieldKey(q)] {
		if raw == "" {
			continue
		}
		choice := choiceByID(q, raw)
		if choice == nil {
			return CleanedAnswer{}, invalidChoice(q)
		}
		selected = append(selected, *choice)
	}
	if len(selected) == 0 {
		return CleanedAnswer{QuestionID: q.ID}, nil
	}
	values := make([]string, len(selected))
	for i, c := range selected {
		values[i] = c.Value
	}
	return CleanedAnswer{
		QuestionID: q.ID,
		Value:      strings.Join(values, ", "),
		Choices:    selected,
	}, nil
}

func (v multiChoice) score(q *model.Question, a CleanedAnswer) float64 {
	total := 0.0
	for _, c := range a.Choices {
		total += c.Weight
	}
	return total
}

// freeText covers Text (long form) and External (short marker text).
// Unscored; anything submitted is stored as-is.
type freeText struct {
	kind Kind
}

func (v freeText) fields(q *model.Question) []Field {
	return []Field{{
		Key:        fieldKey(q),
		QuestionID: q.ID,
		Kind:       v.kind,
		Label:      q.Text,
		HelpText:   q.Name,
		Page:       q.PageNumber,
	}}
}

func (v freeText) clean(q *model.Question, in RawInput) (CleanedAnswer, *FieldError) {
	return CleanedAnswer{QuestionID: q.ID, Value: in.Get(fieldKey(q))}, nil
}

func (v freeText) score(q *model.Question, a CleanedAnswer) float64 {
	return 0
}

// disposition covers ipsative questions: one numeric sub-field per choice.
// When any sub-field is filled in, the values (blanks counting as zero)
// must sum to the question's QuestionSum. Unscored.
type disposition struct{}

func (v disposition) fields(q *model.Question) []Field {
	fields := make([]Field, 0, len(q.Choices))
	for i := range q.Choices {
		c := &q.Choices[i]
		fields = append(fields, Field{
			Key:        subFieldKey(q, c),
			QuestionID: q.ID,
			Kind:       KindNumber,
			Label:      c.Value,
			HelpText:   q.Name,
			Page:       q.PageNumber,
			MaxLength:  3,
		})
	}
	return fields
}

func (v disposition) clean(q *model.Question, in RawInput) (CleanedAnswer, *FieldError) {
	sum := 0
	supplied := false
	parts := make([]string, 0, len(q.Choices))
	for i := range q.Choices {
		c := &q.Choices[i]
		raw := strings.TrimSpace(in.Get(subFieldKey(q, c)))
		value := 0
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return CleanedAnswer{}, &FieldError{
					Key:        subFieldKey(q, c),
					QuestionID: q.ID,
					Message:    "enter numeric values, using zero for blank answers",
				}
			}
			value = n
			supplied = true
		}
		sum += value
		parts = append(parts, fmt.Sprintf("%s:%d", c.Value, value))
	}
	if !supplied {
		return CleanedAnswer{QuestionID: q.ID}, nil
	}
	if sum != q.QuestionSum {
		return CleanedAnswer{}, &FieldError{
			Key:        fieldKey(q),
			QuestionID: q.ID,
			Message:    fmt.Sprintf("values must sum to %d", q.QuestionSum),
		}
	}
	return CleanedAnswer{QuestionID: q.ID, Value: strings.Join(parts, ", ")}, nil
}

func (v disposition) score(q *model.Question, a CleanedAnswer) float64 {
	return 0
}

func choiceOptions(q *model.Question) []Option {
	opts := make([]Option, 0, len(q.Choices))
	for _, c := range q.Choices {
		opts = append(opts, Option{ChoiceID: c.ID, Value: c.Value})
	}
	return opts
}

func choiceByID(q *model.Question, raw string) *model.Choice {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	for i := range q.Choices {
		if q.Choices[i].ID == uint(id) {
			return &q.Choices[i]
		}
	}
	return nil
}

func invalidChoice(q *model.Question) *FieldError {
	return &FieldError{
		Key:        fieldKey(q),
		QuestionID: q.ID,
		Message:    "select a valid choice for this question",
	}
}
