package repository

import (
	"github.com/lshigami/Sunbittern/internal/model"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(grant *model.Availability) error
	FindForSurveyAndUser(surveyID, userID uint) (*model.Availability, error)
	FindAllByUser(userID uint) ([]model.Availability, error)
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(grant *model.Availability) error {
	return r.db.Create(grant).Error
}

func (r *availabilityRepository) FindForSurveyAndUser(surveyID, userID uint) (*model.Availability, error) {
	var grant model.Availability
	err := r.db.Where("survey_id = ? AND user_id = ?", surveyID, userID).First(&grant).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *availabilityRepository) FindAllByUser(userID uint) ([]model.Availability, error) {
	var grants []model.Availability
	err := r.db.Preload("Survey").Where("user_id = ?", userID).Find(&grants).Error
	return grants, err
}
