package repository

import (
	"github.com/alexschwind/ratemycourses/internal/models"

	"gorm.io/gorm"
)

type FlagRepository interface {
	Create(flag *models.RatingFlag) error
	ExistsForRatingAndUser(ratingID int64, userID string) (bool, error)
	List(page, pageSize int) ([]models.RatingFlag, int64, error)
}

type flagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &flagRepository{db: db}
}

// Create stores a flag. A repeat flag by the same user for the same rating
// comes back as ErrDuplicateKey.
func (r *flagRepository) Create(flag *models.RatingFlag) error {
	if err := r.db.Create(flag).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *flagRepository) ExistsForRatingAndUser(ratingID int64, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RatingFlag{}).
		Where("rating_id = ? AND user_id = ?", ratingID, userID).
		Count(&count).Error
	return count > 0, err
}

// List retrieves flags for moderator review, newest first, with the flagged
// rating and both users attached.
func (r *flagRepository) List(page, pageSize int) ([]models.RatingFlag, int64, error) {
	var flags []models.RatingFlag
	var total int64

	if err := r.db.Model(&models.RatingFlag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.
		Preload("Rating").
		Preload("Rating.User").
		Preload("Rating.Course").
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&flags).Error
	if err != nil {
		return nil, 0, err
	}

	return flags, total, nil
}
