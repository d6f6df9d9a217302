package model

import (
	"time"

	"gorm.io/gorm"
)

// Choice is one selectable option of a question. Weight is the score
// contribution when the choice is selected on a scored question type.
type Choice struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Value      string         `json:"choice_value" gorm:"size:500;not null"`
	Weight     float64        `json:"weight" gorm:"default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
