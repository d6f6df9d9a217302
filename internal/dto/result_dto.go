package dto

import "time"

// AnswerDTO is one question's stored answer within a result.
type AnswerDTO struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Question   string `json:"question,omitempty"`
	Value      string `json:"answer"`
}

// ResultDetailDTO is the full record of one completed attempt.
type ResultDetailDTO struct {
	ID            uint        `json:"id"`
	SurveyID      uint        `json:"survey_id"`
	SurveyName    string      `json:"survey_name,omitempty"`
	UserID        uint        `json:"user_id"`
	StartedOn     time.Time   `json:"started_on"`
	CompletedOn   time.Time   `json:"completed_on"`
	ExcessSeconds int64       `json:"excess_seconds"`
	Score         string      `json:"score"`
	Answers       []AnswerDTO `json:"answers"`
}

// ResultSummaryDTO lists one attempt without its answers.
type ResultSummaryDTO struct {
	ID            uint      `json:"id"`
	SurveyID      uint      `json:"survey_id"`
	SurveyName    string    `json:"survey_name,omitempty"`
	UserID        uint      `json:"user_id"`
	CompletedOn   time.Time `json:"completed_on"`
	ExcessSeconds int64     `json:"excess_seconds"`
	Score         string    `json:"score"`
}
