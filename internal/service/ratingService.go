package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrAlreadyRated   = errors.New("course already rated by this user")

	// ErrValidation wraps every input validation failure, handlers match it
	// with errors.Is and answer 400.
	ErrValidation = errors.New("invalid rating")
)

const maxCommentLength = 2000

// RatingInput is a complete rating submission. Scores and Comments may cover
// any subset of the dimensions.
type RatingInput struct {
	Overall  int
	Year     int
	Semester string
	Scores   map[models.Dimension]int
	Comments map[models.Dimension]string
}

type RatingService interface {
	Upsert(ctx context.Context, courseSlug, userID string, input RatingInput) (rating *models.Rating, created bool, err error)
	Delete(ctx context.Context, courseSlug, userID string) error
	GetOwn(ctx context.Context, courseSlug, userID string) (*models.Rating, error)
	ListOwn(userID string) ([]models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	courseRepo repository.CourseRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, courseRepo repository.CourseRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		courseRepo: courseRepo,
	}
}

// Upsert stores the user's rating for a course. A resubmission replaces the
// previous rating as a whole, there is no partial update.
func (s *ratingService) Upsert(ctx context.Context, courseSlug, userID string, input RatingInput) (*models.Rating, bool, error) {
	if err := validateRatingInput(input); err != nil {
		return nil, false, err
	}

	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrCourseNotFound
		}
		return nil, false, err
	}

	if input.Scores == nil {
		input.Scores = map[models.Dimension]int{}
	}
	if input.Comments == nil {
		input.Comments = map[models.Dimension]string{}
	}

	rating := &models.Rating{
		CourseID: course.ID,
		UserID:   userID,
		Overall:  input.Overall,
		Year:     input.Year,
		Semester: input.Semester,
		Scores:   datatypes.NewJSONType(input.Scores),
		Comments: datatypes.NewJSONType(input.Comments),
	}

	created, err := s.ratingRepo.Upsert(rating)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, false, ErrAlreadyRated
		}
		return nil, false, err
	}

	return rating, created, nil
}

// Delete removes the user's own rating for a course.
func (s *ratingService) Delete(ctx context.Context, courseSlug, userID string) error {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.ratingRepo.Delete(course.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return nil
}

// GetOwn returns the user's rating for a course, disabled or not.
func (s *ratingService) GetOwn(ctx context.Context, courseSlug, userID string) (*models.Rating, error) {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	rating, err := s.ratingRepo.GetByCourseAndUser(course.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// ListOwn returns every rating the user has written, newest first.
func (s *ratingService) ListOwn(userID string) ([]models.Rating, error) {
	return s.ratingRepo.GetByUser(userID)
}

func validateRatingInput(input RatingInput) error {
	if input.Overall < 1 || input.Overall > 5 {
		return fmt.Errorf("%w: overall must be between 1 and 5", ErrValidation)
	}

	maxYear := time.Now().Year() + 1
	if input.Year < models.MinRatingYear || input.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrValidation, models.MinRatingYear, maxYear)
	}

	if !models.ValidSemester(input.Semester) {
		return fmt.Errorf("%w: semester must be %s or %s", ErrValidation, models.SemesterSummer, models.SemesterWinter)
	}

	for d, score := range input.Scores {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown dimension %q", ErrValidation, d)
		}
		min, max := d.ScoreRange()
		if score < min || score > max {
			return fmt.Errorf("%w: score for %s must be between %d and %d", ErrValidation, d, min, max)
		}
	}

	for d, comment := range input.Comments {
		if !d.Valid() {
			return fmt.Errorf("%w: unknown dimension %q", ErrValidation, d)
		}
		if len(comment) > maxCommentLength {
			return fmt.Errorf("%w: comment for %s exceeds %d characters", ErrValidation, d, maxCommentLength)
		}
	}

	return nil
}
