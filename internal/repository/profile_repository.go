package repository

import (
	"github.com/lshigami/Sunbittern/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetOrCreate(userID uint) (*model.UserProfile, error)
	Update(profile *model.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access. Idempotent; errors other than not-found propagate.
func (r *profileRepository) GetOrCreate(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.Where(model.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *model.UserProfile) error {
	return r.db.Save(profile).Error
}
