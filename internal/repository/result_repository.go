package repository

import (
	"github.com/lshigami/Sunbittern/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	ExistsForSurveyAndUser(surveyID, userID uint) (bool, error)
	FindByIDWithAnswers(id uint) (*model.Result, error)
	FindAllByUser(userID uint) ([]model.Result, error)
	FindAllBySurvey(surveyID uint) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// ExistsForSurveyAndUser is the fast-path duplicate check. The unique index
// on (survey_id, user_id) remains the authoritative guard at insert time.
func (r *resultRepository) ExistsForSurveyAndUser(surveyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Result{}).
		Where("survey_id = ? AND user_id = ?", surveyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *resultRepository) FindByIDWithAnswers(id uint) (*model.Result, error) {
	var result model.Result
	err := r.db.
		Preload("Survey").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Preload("Answers.Question").
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Preload("Survey").
		Where("user_id = ?", userID).
		Order("completed_on DESC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) FindAllBySurvey(surveyID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("survey_id = ?", surveyID).
		Order("completed_on DESC").
		Find(&results).Error
	return results, err
}
