package service

import (
	"errors"
	"fmt"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileView is the user-facing shape of a scoring profile: the stored
// weights together with the importance levels they correspond to.
type ProfileView struct {
	Weights             map[models.Dimension]int
	Levels              map[models.Dimension]int
	PracticalPreference int
}

type ProfileService interface {
	Get(userID string) (*ProfileView, error)
	Update(userID string, levels map[models.Dimension]int, practicalPreference int) (*ProfileView, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(userID string) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return viewFromProfile(profile), nil
}

// Update replaces the whole profile: an importance level for every dimension
// plus the practical/theoretical preference. Partial updates are rejected so
// the stored weights always form a complete set.
func (s *profileService) Update(userID string, levels map[models.Dimension]int, practicalPreference int) (*ProfileView, error) {
	weights := make(map[models.Dimension]int, len(models.AllDimensions()))
	for _, d := range models.AllDimensions() {
		level, ok := levels[d]
		if !ok {
			return nil, fmt.Errorf("%w: missing importance for %s", ErrValidation, d)
		}
		weight, ok := models.WeightForImportance(level)
		if !ok {
			return nil, fmt.Errorf("%w: importance for %s must be between 1 and 5", ErrValidation, d)
		}
		weights[d] = weight
	}
	for d := range levels {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: unknown dimension %q", ErrValidation, d)
		}
	}

	if practicalPreference < 0 || practicalPreference > 100 {
		return nil, fmt.Errorf("%w: practical preference must be between 0 and 100", ErrValidation)
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	profile.Weights = datatypes.NewJSONType(weights)
	profile.PracticalPreference = practicalPreference

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	return viewFromProfile(profile), nil
}

func viewFromProfile(profile *models.UserProfile) *ProfileView {
	stored := profile.Weights.Data()

	weights := make(map[models.Dimension]int, len(models.AllDimensions()))
	levels := make(map[models.Dimension]int, len(models.AllDimensions()))
	for _, d := range models.AllDimensions() {
		weight, ok := stored[d]
		if !ok {
			weight = models.DefaultWeight
		}
		weights[d] = weight
		levels[d] = models.ImportanceForWeight(weight)
	}

	return &ProfileView{
		Weights:             weights,
		Levels:              levels,
		PracticalPreference: profile.PracticalPreference,
	}
}
