package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Survey is a named, ordered collection of questions presented to a user
// as one assessment. Question order is insertion order (ascending id).
type Survey struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Name              string         `json:"name" gorm:"size:200;not null"`
	Slug              string         `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Insertion         string         `json:"insertion,omitempty" gorm:"size:200"`
	Description       string         `json:"description" gorm:"type:text"`
	PubDate           time.Time      `json:"pub_date"`
	ExternalSurveyURL string         `json:"external_survey_url,omitempty" gorm:"size:255"`
	MinutesAllowed    float64        `json:"minutes_allowed" gorm:"default:0"` // 0 = unlimited
	IsActive          bool           `json:"is_active" gorm:"default:true"`
	Questions         []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// ExternalURL returns the survey-level external URL if it is an absolute
// http(s) URL, or "" when none is usable.
func (s *Survey) ExternalURL() string {
	if strings.HasPrefix(s.ExternalSurveyURL, "http://") || strings.HasPrefix(s.ExternalSurveyURL, "https://") {
		return s.ExternalSurveyURL
	}
	return ""
}
