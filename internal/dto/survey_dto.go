package dto

import (
	"time"

	"github.com/lshigami/Sunbittern/internal/form"
)

// SurveySummaryDTO is used for listing surveys available to a user.
type SurveySummaryDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	MinutesAllowed float64   `json:"minutes_allowed"`
	PubDate        time.Time `json:"pub_date"`
}

// SurveyListDTO is the landing-page listing: surveys still open to the user
// plus summaries of the ones already completed.
type SurveyListDTO struct {
	Available []SurveySummaryDTO `json:"available"`
	Completed []ResultSummaryDTO `json:"completed"`
}

// SurveyFormDTO is the response to opening a survey: metadata plus the
// runtime-built field specification for this survey's questions.
type SurveyFormDTO struct {
	ID               uint         `json:"id"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	Description      string       `json:"description,omitempty"`
	MinutesAllowed   float64      `json:"minutes_allowed"`
	ExternalURL      string       `json:"external_url,omitempty"`
	StartedOn        time.Time    `json:"started_on"`
	RemainingSeconds int64        `json:"remaining_seconds"`
	Fields           []form.Field `json:"fields"`
}

// TimerDTO reports the countdown state of an attempt in progress.
type TimerDTO struct {
	Slug             string `json:"slug"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

// ResultSubmitDTO carries submitted answers keyed by form field key, values
// shaped like posted form data (multi-select fields submit several values).
type ResultSubmitDTO struct {
	Answers map[string][]string `json:"answers" binding:"required"`
}
