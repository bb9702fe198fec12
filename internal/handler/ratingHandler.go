package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexschwind/ratemycourses/internal/dto"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/courses/:slug/ratings")
	{
		ratings.POST("", h.CreateOrUpdate) // Create or replace user's rating
		ratings.GET("/me", h.GetOwn)       // Get current user's rating
		ratings.DELETE("", h.Delete)       // Delete user's rating
	}

	mine := router.Group("/me/ratings")
	{
		mine.GET("", h.ListMine) // Get all of the current user's ratings
	}
}

// CreateOrUpdate creates or replaces a rating for a course
// POST /api/courses/:slug/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	courseSlug := c.Param("slug")

	// Get user ID from context (set by AuthMiddleware)
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.RatingInput{
		Overall:  req.Overall,
		Year:     req.Year,
		Semester: req.Semester,
		Scores:   req.Scores,
		Comments: req.Comments,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, created, err := h.ratingService.Upsert(ctx, courseSlug, userID.(string), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.FromModelToUserRatingResponse(rating))
}

// GetOwn retrieves the current user's rating for a course
// GET /api/courses/:slug/ratings/me
func (h *RatingHandler) GetOwn(c *gin.Context) {
	courseSlug := c.Param("slug")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, err := h.ratingService.GetOwn(ctx, courseSlug, userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) || errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserRatingResponse(rating))
}

// Delete removes the current user's rating for a course
// DELETE /api/courses/:slug/ratings
func (h *RatingHandler) Delete(c *gin.Context) {
	courseSlug := c.Param("slug")

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.ratingService.Delete(ctx, courseSlug, userID.(string)); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) || errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// ListMine retrieves all ratings by the current user, including disabled ones
// GET /api/me/ratings
func (h *RatingHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ratings, err := h.ratingService.ListOwn(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.UserRatingResponse, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, *dto.FromModelToUserRatingResponse(&ratings[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}
