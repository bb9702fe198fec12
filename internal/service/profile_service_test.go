package service

import (
	"errors"
	"testing"

	"github.com/alexschwind/ratemycourses/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func fullLevels(level int) map[models.Dimension]int {
	m := make(map[models.Dimension]int, len(models.AllDimensions()))
	for _, d := range models.AllDimensions() {
		m[d] = level
	}
	return m
}

func TestGetProfile(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	mockProfileRepo.On("GetByUserID", "user-id").Return(models.NewDefaultProfile("user-id"), nil)

	view, err := svc.Get("user-id")

	assert.NoError(t, err)
	assert.Equal(t, models.DefaultPracticalPreference, view.PracticalPreference)
	for _, d := range models.AllDimensions() {
		assert.Equal(t, models.DefaultWeight, view.Weights[d])
		// the default weight of 20 sits on importance level 3
		assert.Equal(t, 3, view.Levels[d])
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	mockProfileRepo.On("GetByUserID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	view, err := svc.Get("ghost")

	assert.Error(t, err)
	assert.Equal(t, ErrProfileNotFound, err)
	assert.Nil(t, view)
}

func TestUpdateProfile_Success(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	mockProfileRepo.On("GetByUserID", "user-id").Return(models.NewDefaultProfile("user-id"), nil)
	mockProfileRepo.On("Update", mock.AnythingOfType("*models.UserProfile")).Return(nil)

	levels := fullLevels(3)
	levels[models.DimensionWorkload] = 5
	levels[models.DimensionOrganization] = 1

	view, err := svc.Update("user-id", levels, 80)

	assert.NoError(t, err)
	assert.Equal(t, 80, view.PracticalPreference)
	assert.Equal(t, 80, view.Weights[models.DimensionWorkload])
	assert.Equal(t, 5, view.Levels[models.DimensionWorkload])
	assert.Equal(t, 0, view.Weights[models.DimensionOrganization])
	assert.Equal(t, 1, view.Levels[models.DimensionOrganization])
	assert.Equal(t, 20, view.Weights[models.DimensionSupport])
	mockProfileRepo.AssertExpectations(t)
}

func TestUpdateProfile_MissingDimension(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	levels := fullLevels(3)
	delete(levels, models.DimensionSupport)

	view, err := svc.Update("user-id", levels, 50)

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Nil(t, view)
	mockProfileRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateProfile_BadLevel(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	for _, level := range []int{0, 6, -1} {
		levels := fullLevels(3)
		levels[models.DimensionWorkload] = level

		_, err := svc.Update("user-id", levels, 50)
		assert.True(t, errors.Is(err, ErrValidation), "level %d", level)
	}
}

func TestUpdateProfile_UnknownDimension(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	levels := fullLevels(3)
	levels[models.Dimension("vibes")] = 4

	_, err := svc.Update("user-id", levels, 50)

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateProfile_PreferenceOutOfRange(t *testing.T) {
	mockProfileRepo := new(MockProfileRepository)
	svc := NewProfileService(mockProfileRepo)

	for _, pref := range []int{-1, 101} {
		_, err := svc.Update("user-id", fullLevels(3), pref)
		assert.True(t, errors.Is(err, ErrValidation), "preference %d", pref)
	}
}
