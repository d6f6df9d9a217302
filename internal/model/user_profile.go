package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile extends the externally-managed user account with assessment
// metadata. The user id is an opaque foreign key supplied by the identity
// provider. Profiles are created on demand, one per user.
type UserProfile struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	UserID             uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	Gender             string         `json:"gender,omitempty" gorm:"size:200"`
	PhoneNumber        string         `json:"phone_number,omitempty" gorm:"size:200"`
	JobTitle           string         `json:"job_title,omitempty" gorm:"size:200"`
	JobDepartment      string         `json:"job_department,omitempty" gorm:"size:200"`
	JobLocation        string         `json:"job_location,omitempty" gorm:"size:200"`
	Company            string         `json:"company,omitempty" gorm:"size:200"`
	AssessmentProtocol string         `json:"assessment_protocol,omitempty" gorm:"size:200"`
	ProfileToken       string         `json:"profile_token" gorm:"size:200;uniqueIndex"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the login-link token.
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ProfileToken == "" {
		p.ProfileToken = uuid.NewString()
	}
	return nil
}
