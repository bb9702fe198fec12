package service

import (
	"errors"
	"strings"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrSelfFlag       = errors.New("cannot flag your own rating")
	ErrAlreadyFlagged = errors.New("rating already flagged by this user")
	ErrReasonRequired = errors.New("flag reason required")
)

type ModerationService interface {
	Flag(ratingID int64, userID, reason string) (*models.RatingFlag, error)
	SetDisabled(ratingID int64, disabled bool) (*models.Rating, error)
	ListFlags(page, pageSize int) ([]models.RatingFlag, int64, error)
}

type moderationService struct {
	ratingRepo repository.RatingRepository
	flagRepo   repository.FlagRepository
}

func NewModerationService(ratingRepo repository.RatingRepository, flagRepo repository.FlagRepository) ModerationService {
	return &moderationService{
		ratingRepo: ratingRepo,
		flagRepo:   flagRepo,
	}
}

// Flag reports a rating for moderator review. Users cannot flag their own
// ratings, and flagging something twice is answered with ErrAlreadyFlagged
// so callers can treat it as already done.
func (s *moderationService) Flag(ratingID int64, userID, reason string) (*models.RatingFlag, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	rating, err := s.ratingRepo.GetByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	if rating.UserID == userID {
		return nil, ErrSelfFlag
	}

	exists, err := s.flagRepo.ExistsForRatingAndUser(ratingID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFlagged
	}

	flag := &models.RatingFlag{
		RatingID: ratingID,
		UserID:   userID,
		Reason:   reason,
	}
	if err := s.flagRepo.Create(flag); err != nil {
		// Concurrent duplicate slipped past the exists check, same outcome.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyFlagged
		}
		return nil, err
	}

	return flag, nil
}

// SetDisabled switches a rating's visibility. Repeating the current state is
// not an error, the call is idempotent.
func (s *moderationService) SetDisabled(ratingID int64, disabled bool) (*models.Rating, error) {
	if err := s.ratingRepo.SetDisabled(ratingID, disabled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return s.ratingRepo.GetByID(ratingID)
}

func (s *moderationService) ListFlags(page, pageSize int) ([]models.RatingFlag, int64, error) {
	return s.flagRepo.List(page, pageSize)
}
