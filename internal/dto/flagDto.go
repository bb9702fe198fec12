package dto

import (
	"time"

	"github.com/alexschwind/ratemycourses/internal/models"
)

// CreateFlagDTO for reporting a rating
type CreateFlagDTO struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

// FlagResponse for the moderation queue. The rating is embedded with enough
// context to judge the report without another lookup.
type FlagResponse struct {
	ID         int64     `json:"id"`
	RatingID   int64     `json:"rating_id"`
	Reason     string    `json:"reason"`
	ReportedBy string    `json:"reported_by"`
	CreatedAt  time.Time `json:"created_at"`

	CourseName    string                      `json:"course_name"`
	CourseSlug    string                      `json:"course_slug"`
	RatingAuthor  string                      `json:"rating_author"`
	Overall       int                         `json:"overall"`
	Term          string                      `json:"term"`
	Comments      map[models.Dimension]string `json:"comments,omitempty"`
	RatingVisible bool                        `json:"rating_visible"`
}

// FromModelToFlagResponse converts a RatingFlag model to FlagResponse DTO
func FromModelToFlagResponse(flag *models.RatingFlag) *FlagResponse {
	return &FlagResponse{
		ID:            flag.ID,
		RatingID:      flag.RatingID,
		Reason:        flag.Reason,
		ReportedBy:    flag.User.Username,
		CreatedAt:     flag.CreatedAt,
		CourseName:    flag.Rating.Course.Name,
		CourseSlug:    flag.Rating.Course.Slug,
		RatingAuthor:  flag.Rating.User.Username,
		Overall:       flag.Rating.Overall,
		Term:          flag.Rating.Term(),
		Comments:      flag.Rating.Comments.Data(),
		RatingVisible: !flag.Rating.IsDisabled,
	}
}

// SetRatingVisibilityDTO for hiding or restoring a rating. Disabled is a
// pointer so an explicit false survives binding.
type SetRatingVisibilityDTO struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// PaginatedFlagResponse for returning the paginated moderation queue
type PaginatedFlagResponse struct {
	Data       []FlagResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// NewPaginatedFlagResponse creates a paginated flag response
func NewPaginatedFlagResponse(data []FlagResponse, total, page, pageSize int) *PaginatedFlagResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFlagResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
