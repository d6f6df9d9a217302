package repository

import (
	"github.com/lshigami/Sunbittern/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindBySlug(slug string) (*model.Survey, error)
	FindBySlugWithQuestions(slug string) (*model.Survey, error)
	FindAll() ([]model.Survey, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// GORM creates nested questions and choices along with the survey.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindBySlug(slug string) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.Where("slug = ?", slug).First(&survey).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindBySlugWithQuestions loads the survey with questions and their choices
// in defined order (ascending id, the authoring order).
func (r *surveyRepository) FindBySlugWithQuestions(slug string) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		Where("slug = ?", slug).First(&survey).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAll() ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.Order("pub_date ASC").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}
