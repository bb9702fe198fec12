package repository

import (
	"errors"

	"github.com/alexschwind/ratemycourses/internal/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Upsert(rating *models.Rating) (created bool, err error)
	Delete(courseID int64, userID string) error
	GetByCourseAndUser(courseID int64, userID string) (*models.Rating, error)
	GetVisibleByCourse(courseID int64, page, pageSize int) ([]models.Rating, int64, error)
	GetAllVisibleByCourse(courseID int64) ([]models.Rating, error)
	GetByUser(userID string) ([]models.Rating, error)
	GetByID(id int64) (*models.Rating, error)
	SetDisabled(id int64, disabled bool) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the user already rated the course,
// replaces every user-editable field of the existing row. The moderation
// state of the row survives the update. A concurrent first submission that
// loses the insert race surfaces as ErrDuplicateKey.
func (r *ratingRepository) Upsert(rating *models.Rating) (bool, error) {
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("course_id = ? AND user_id = ?", rating.CourseID, rating.UserID).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(rating).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrDuplicateKey
				}
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		rating.ID = existing.ID
		rating.CreatedAt = existing.CreatedAt
		rating.IsDisabled = existing.IsDisabled
		return tx.Save(rating).Error
	})

	return created, err
}

// Delete removes a user's rating for a course.
func (r *ratingRepository) Delete(courseID int64, userID string) error {
	result := r.db.Where("course_id = ? AND user_id = ?", courseID, userID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByCourseAndUser retrieves a user's own rating for a course, disabled or
// not.
func (r *ratingRepository) GetByCourseAndUser(courseID int64, userID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetVisibleByCourse retrieves the ratings shown on a course page, newest
// first, with pagination.
func (r *ratingRepository) GetVisibleByCourse(courseID int64, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.Model(&models.Rating{}).
		Scopes(Visible).
		Where("course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Scopes(Visible).
		Where("course_id = ?", courseID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// GetAllVisibleByCourse retrieves every visible rating of a course without
// pagination, used for course-wide score computations.
func (r *ratingRepository) GetAllVisibleByCourse(courseID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Scopes(Visible).
		Where("course_id = ?", courseID).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByUser retrieves every rating a user has written, including disabled
// ones, newest first.
func (r *ratingRepository) GetByUser(userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// SetDisabled switches the moderation state of a rating. Setting the state
// it already has is fine, the row still matches.
func (r *ratingRepository) SetDisabled(id int64, disabled bool) error {
	result := r.db.Model(&models.Rating{}).Where("id = ?", id).Update("is_disabled", disabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
