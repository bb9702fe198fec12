package dto

import (
	"time"

	"github.com/alexschwind/ratemycourses/internal/models"
)

// CreateRatingDTO for creating or replacing a rating. Scores and Comments
// are keyed by dimension name and may cover any subset of the dimensions;
// full validation happens in the service.
type CreateRatingDTO struct {
	Overall  int                         `json:"overall" binding:"required,min=1,max=5"`
	Year     int                         `json:"year" binding:"required"`
	Semester string                      `json:"semester" binding:"required,oneof=SS WS"`
	Scores   map[models.Dimension]int    `json:"scores"`
	Comments map[models.Dimension]string `json:"comments"`
}

// RatingResponse for returning rating information (for course page list view)
type RatingResponse struct {
	ID           int64                       `json:"id"`
	Username     string                      `json:"username"`
	Overall      int                         `json:"overall"`
	Term         string                      `json:"term"`
	Scores       map[models.Dimension]int    `json:"scores,omitempty"`
	Comments     map[models.Dimension]string `json:"comments,omitempty"`
	Personalized *float64                    `json:"personalized,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		Username:  rating.User.Username,
		Overall:   rating.Overall,
		Term:      rating.Term(),
		Scores:    rating.Scores.Data(),
		Comments:  rating.Comments.Data(),
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// UserRatingResponse for returning the user's own rating. IsDisabled is
// included so owners can see when a rating was taken down.
type UserRatingResponse struct {
	ID         int64                       `json:"id"`
	CourseID   int64                       `json:"course_id"`
	CourseName string                      `json:"course_name,omitempty"`
	CourseSlug string                      `json:"course_slug,omitempty"`
	Overall    int                         `json:"overall"`
	Year       int                         `json:"year"`
	Semester   string                      `json:"semester"`
	Term       string                      `json:"term"`
	Scores     map[models.Dimension]int    `json:"scores,omitempty"`
	Comments   map[models.Dimension]string `json:"comments,omitempty"`
	IsDisabled bool                        `json:"is_disabled"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// FromModelToUserRatingResponse converts a Rating model to the owner view
func FromModelToUserRatingResponse(rating *models.Rating) *UserRatingResponse {
	return &UserRatingResponse{
		ID:         rating.ID,
		CourseID:   rating.CourseID,
		CourseName: rating.Course.Name,
		CourseSlug: rating.Course.Slug,
		Overall:    rating.Overall,
		Year:       rating.Year,
		Semester:   rating.Semester,
		Term:       rating.Term(),
		Scores:     rating.Scores.Data(),
		Comments:   rating.Comments.Data(),
		IsDisabled: rating.IsDisabled,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
}

// PaginatedRatingResponse for returning paginated ratings
type PaginatedRatingResponse struct {
	Data       []RatingResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedRatingResponse creates a paginated rating response
func NewPaginatedRatingResponse(data []RatingResponse, total, page, pageSize int) *PaginatedRatingResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedRatingResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
