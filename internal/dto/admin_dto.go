package dto

import "time"

// ChoiceCreateDTO is used within QuestionCreateDTO for survey authoring.
type ChoiceCreateDTO struct {
	Value  string  `json:"choice_value" binding:"required"`
	Weight float64 `json:"weight"`
}

// QuestionCreateDTO is used within SurveyCreateDTO for survey authoring.
type QuestionCreateDTO struct {
	Name        string            `json:"question_name"`
	Text        string            `json:"question" binding:"required"`
	Type        int               `json:"question_type" binding:"required,min=1,max=7"`
	PageNumber  int               `json:"page_number"`
	QuestionSum int               `json:"question_sum"`
	Choices     []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// SurveyCreateDTO is for admins to author a survey with all its questions.
type SurveyCreateDTO struct {
	Name              string              `json:"name" binding:"required"`
	Insertion         string              `json:"insertion"`
	Description       string              `json:"description"`
	ExternalSurveyURL string              `json:"external_survey_url"`
	MinutesAllowed    float64             `json:"minutes_allowed" binding:"min=0"`
	IsActive          *bool               `json:"is_active"`
	Questions         []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// ChoiceResponseDTO mirrors an authored choice.
type ChoiceResponseDTO struct {
	ID     uint    `json:"id"`
	Value  string  `json:"choice_value"`
	Weight float64 `json:"weight"`
}

// QuestionResponseDTO mirrors an authored question.
type QuestionResponseDTO struct {
	ID          uint                `json:"id"`
	SurveyID    uint                `json:"survey_id"`
	Name        string              `json:"question_name,omitempty"`
	Text        string              `json:"question"`
	Type        int                 `json:"question_type"`
	PageNumber  int                 `json:"page_number"`
	QuestionSum int                 `json:"question_sum"`
	Choices     []ChoiceResponseDTO `json:"choices,omitempty"`
}

// SurveyResponseDTO mirrors an authored survey with its questions.
type SurveyResponseDTO struct {
	ID                uint                  `json:"id"`
	Name              string                `json:"name"`
	Slug              string                `json:"slug"`
	Description       string                `json:"description,omitempty"`
	ExternalSurveyURL string                `json:"external_survey_url,omitempty"`
	MinutesAllowed    float64               `json:"minutes_allowed"`
	IsActive          bool                  `json:"is_active"`
	PubDate           time.Time             `json:"pub_date"`
	Questions         []QuestionResponseDTO `json:"questions,omitempty"`
}

// AvailabilityCreateDTO grants a user access to a survey.
type AvailabilityCreateDTO struct {
	UserID     uint   `json:"user_id" binding:"required"`
	SurveySlug string `json:"survey_slug" binding:"required"`
	URL        string `json:"url"`
}

// AvailabilityDTO mirrors a stored grant.
type AvailabilityDTO struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	SurveyID uint   `json:"survey_id"`
	URL      string `json:"url,omitempty"`
}
