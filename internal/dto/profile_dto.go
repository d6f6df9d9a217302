package dto

// ProfileDTO mirrors a user's assessment profile.
type ProfileDTO struct {
	ID                 uint   `json:"id"`
	UserID             uint   `json:"user_id"`
	Gender             string `json:"gender,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	JobTitle           string `json:"job_title,omitempty"`
	JobDepartment      string `json:"job_department,omitempty"`
	JobLocation        string `json:"job_location,omitempty"`
	Company            string `json:"company,omitempty"`
	AssessmentProtocol string `json:"assessment_protocol,omitempty"`
	ProfileToken       string `json:"profile_token"`
}

// ProfileUpdateDTO carries profile fields a user may change. Field lengths
// are validated against the configured identity limit.
type ProfileUpdateDTO struct {
	Gender             *string `json:"gender"`
	PhoneNumber        *string `json:"phone_number"`
	JobTitle           *string `json:"job_title"`
	JobDepartment      *string `json:"job_department"`
	JobLocation        *string `json:"job_location"`
	Company            *string `json:"company"`
	AssessmentProtocol *string `json:"assessment_protocol"`
}
