package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType identifies the semantic shape of a question's answer.
// Values match the codes used by authored survey data.
type QuestionType int

const (
	TrueFalse QuestionType = iota + 1
	MultipleChoice
	Text
	External
	MultiSelect
	Range
	Disposition
)

// DefaultQuestionSum is the required total for Disposition answers when a
// question does not specify its own.
const DefaultQuestionSum = 100

func (t QuestionType) String() string {
	switch t {
	case TrueFalse:
		return "true_false"
	case MultipleChoice:
		return "multiple_choice"
	case Text:
		return "text"
	case External:
		return "external"
	case MultiSelect:
		return "multi_select"
	case Range:
		return "range"
	case Disposition:
		return "disposition"
	}
	return "unknown"
}

// Valid reports whether t is one of the closed set of question types.
func (t QuestionType) Valid() bool {
	return t >= TrueFalse && t <= Disposition
}

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SurveyID    uint           `json:"survey_id" gorm:"not null;index"`
	PageNumber  int            `json:"page_number" gorm:"default:1"`
	QuestionSum int            `json:"question_sum" gorm:"default:100"` // Disposition total
	Name        string         `json:"question_name" gorm:"size:255"`
	Text        string         `json:"question" gorm:"type:text;not null"`
	Type        QuestionType   `json:"question_type" gorm:"not null;default:2"`
	Choices     []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
