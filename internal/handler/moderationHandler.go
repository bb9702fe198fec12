package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alexschwind/ratemycourses/internal/dto"
	"github.com/alexschwind/ratemycourses/internal/middleware"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationService service.ModerationService
}

func NewModerationHandler(moderationService service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
	}
}

// RegisterRoutes registers flagging and moderation routes. flagLimit guards
// the flag endpoint against report spam.
func (h *ModerationHandler) RegisterRoutes(router *gin.RouterGroup, flagLimit gin.HandlerFunc) {
	flags := router.Group("/ratings/:rating_id/flags")
	{
		flags.POST("", flagLimit, h.Create) // Flag a rating for review
	}

	// Admin-only routes
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/flags", h.ListFlags)
		admin.PATCH("/ratings/:rating_id/disable", h.SetDisabled)
	}
}

// Create flags a rating for moderator review
// POST /api/ratings/:rating_id/flags
func (h *ModerationHandler) Create(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateFlagDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flag, err := h.moderationService.Flag(ratingID, userID.(string), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyFlagged):
			// repeat flags are fine, the report is already in the queue
			c.JSON(http.StatusOK, gin.H{"message": "You already flagged this rating"})
		case errors.Is(err, service.ErrSelfFlag):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating flagged for review",
		"flag_id": flag.ID,
	})
}

// ListFlags retrieves the moderation queue with pagination
// GET /api/admin/flags?page=1&page_size=20
func (h *ModerationHandler) ListFlags(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	flags, total, err := h.moderationService.ListFlags(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.FlagResponse, 0, len(flags))
	for i := range flags {
		resp = append(resp, *dto.FromModelToFlagResponse(&flags[i]))
	}

	c.JSON(http.StatusOK, dto.NewPaginatedFlagResponse(resp, int(total), page, pageSize))
}

// SetDisabled hides or restores a rating
// PATCH /api/admin/ratings/:rating_id/disable
func (h *ModerationHandler) SetDisabled(c *gin.Context) {
	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	var req dto.SetRatingVisibilityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.moderationService.SetDisabled(ratingID, *req.Disabled)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating_id":   rating.ID,
		"is_disabled": rating.IsDisabled,
	})
}
