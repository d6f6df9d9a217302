package model

import (
	"time"

	"gorm.io/gorm"
)

// Availability is an authorization grant permitting one user to attempt one
// survey. URL optionally points at an external instrument surfaced alongside
// External-type questions, overriding the survey-level URL.
type Availability struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_availability_survey_user"`
	SurveyID  uint           `json:"survey_id" gorm:"not null;uniqueIndex:idx_availability_survey_user"`
	Survey    Survey         `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	URL       string         `json:"url,omitempty" gorm:"size:255"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
