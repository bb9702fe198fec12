package dto

import (
	"time"

	"github.com/alexschwind/ratemycourses/internal/models"
)

// CreateCourseDTO used for POST /api/courses. The classification fields are
// optional but must be given together.
type CreateCourseDTO struct {
	Name        string `json:"name" binding:"required,max=255"`
	Faculty     string `json:"faculty,omitempty"`
	Institute   string `json:"institute,omitempty"`
	SubjectArea string `json:"subject_area,omitempty"`
}

// ClassificationResponse names the hierarchy a course belongs to
type ClassificationResponse struct {
	Faculty     string `json:"faculty"`
	Institute   string `json:"institute"`
	SubjectArea string `json:"subject_area"`
}

// CourseResponse DTO for responses
type CourseResponse struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Classification *ClassificationResponse `json:"classification,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// CourseDetailResponse is the full course page: the course, community
// aggregates and the viewer's personalized average when they have a profile.
type CourseDetailResponse struct {
	CourseResponse
	AverageRating   *float64                 `json:"average_rating"`
	RatingCount     int64                    `json:"rating_count"`
	PageViews       int64                    `json:"page_views"`
	PersonalizedAvg *float64                 `json:"personalized_avg,omitempty"`
	Ratings         *PaginatedRatingResponse `json:"ratings"`
}

// Converters
func FromModelToCourseResponse(m *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
	if sa := m.SubjectArea; sa != nil && sa.Institute != nil && sa.Institute.Faculty != nil {
		resp.Classification = &ClassificationResponse{
			Faculty:     sa.Institute.Faculty.Name,
			Institute:   sa.Institute.Name,
			SubjectArea: sa.Name,
		}
	}
	return resp
}
