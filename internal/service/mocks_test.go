package service

import (
	"context"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared test doubles for the service suite. The auth mocks live in
// auth_service_test.go.

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) List(ctx context.Context, opts repository.CourseListOptions) ([]repository.CourseListItem, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]repository.CourseListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) EnsureClassification(ctx context.Context, faculty, institute, subjectArea string) (*models.SubjectArea, error) {
	args := m.Called(ctx, faculty, institute, subjectArea)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubjectArea), args.Error(1)
}

func (m *MockCourseRepository) Aggregate(ctx context.Context, courseID int64) (float64, int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(rating *models.Rating) (bool, error) {
	args := m.Called(rating)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) Delete(courseID int64, userID string) error {
	args := m.Called(courseID, userID)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByCourseAndUser(courseID int64, userID string) (*models.Rating, error) {
	args := m.Called(courseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetVisibleByCourse(courseID int64, page, pageSize int) ([]models.Rating, int64, error) {
	args := m.Called(courseID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) GetAllVisibleByCourse(courseID int64) ([]models.Rating, error) {
	args := m.Called(courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUser(userID string) ([]models.Rating, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByID(id int64) (*models.Rating, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) SetDisabled(id int64, disabled bool) error {
	args := m.Called(id, disabled)
	return args.Error(0)
}

type MockFlagRepository struct {
	mock.Mock
}

func (m *MockFlagRepository) Create(flag *models.RatingFlag) error {
	args := m.Called(flag)
	return args.Error(0)
}

func (m *MockFlagRepository) ExistsForRatingAndUser(ratingID int64, userID string) (bool, error) {
	args := m.Called(ratingID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlagRepository) List(page, pageSize int) ([]models.RatingFlag, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.RatingFlag), args.Get(1).(int64), args.Error(2)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}
