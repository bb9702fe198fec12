package repository

import (
	"github.com/alexschwind/ratemycourses/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository reads and writes user scoring profiles. Profiles are
// created alongside the user, see UserRepository.CreateWithProfile.
type ProfileRepository interface {
	GetByUserID(userID string) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
