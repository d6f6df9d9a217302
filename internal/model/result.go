package model

import "time"

// Result records one user's completed attempt at one survey. The composite
// unique index over (survey_id, user_id) is the authoritative guard against
// double submission. Results are created once and never updated.
type Result struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_results_survey_user"`
	SurveyID      uint      `json:"survey_id" gorm:"not null;uniqueIndex:idx_results_survey_user"`
	Survey        Survey    `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	StartedOn     time.Time `json:"started_on" gorm:"not null"`
	CompletedOn   time.Time `json:"completed_on" gorm:"not null"`
	ExcessSeconds int64     `json:"excess_seconds"`
	Score         string    `json:"score" gorm:"size:10;default:0"`
	Answers       []Answer  `json:"answers,omitempty" gorm:"foreignKey:ResultID"`
	CreatedAt     time.Time `json:"created_at"`
}
