package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexschwind/ratemycourses/internal/dto"
	"github.com/alexschwind/ratemycourses/internal/middleware"
	"github.com/alexschwind/ratemycourses/internal/repository"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	svc service.CourseService
}

func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public routes (any authenticated user)
	rg.GET("", h.List)
	rg.GET("/:slug", h.Get)

	// Admin-only routes
	rg.POST("", middleware.RequireAdmin(), h.Create)
	rg.POST("/import", middleware.RequireAdmin(), h.Import)
}

// List handles GET /api/courses with search, sort and pagination
func (h *CourseHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	opts := repository.CourseListOptions{
		Search:   strings.TrimSpace(c.Query("q")),
		Sort:     strings.TrimSpace(c.DefaultQuery("sort", repository.SortNameAsc)),
		Page:     1,
		PageSize: 20,
	}

	if !repository.ValidSort(opts.Sort) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort, must be one of: name, -name, rating, -rating"})
		return
	}

	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			opts.Page = parsed
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if parsed, err := strconv.Atoi(ps); err == nil && parsed > 0 && parsed <= 100 {
			opts.PageSize = parsed
		}
	}

	list, total, err := h.svc.List(ctx, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"pagination": gin.H{
			"page":        opts.Page,
			"page_size":   opts.PageSize,
			"total":       total,
			"total_pages": (total + int64(opts.PageSize) - 1) / int64(opts.PageSize),
		},
	})
}

// Get handles GET /api/courses/:slug, the full course page
func (h *CourseHandler) Get(c *gin.Context) {
	courseSlug := c.Param("slug")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	// the viewer is known here, detail pages sit behind the auth middleware
	viewerID := c.GetString("userID")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	detail, err := h.svc.GetDetail(ctx, courseSlug, viewerID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ratings := make([]dto.RatingResponse, 0, len(detail.Ratings))
	for i := range detail.Ratings {
		resp := dto.FromModelToRatingResponse(&detail.Ratings[i])
		resp.Personalized = detail.Personalized[resp.ID]
		ratings = append(ratings, *resp)
	}

	c.JSON(http.StatusOK, dto.CourseDetailResponse{
		CourseResponse:  dto.FromModelToCourseResponse(detail.Course),
		AverageRating:   detail.AverageRating,
		RatingCount:     detail.RatingCount,
		PageViews:       detail.PageViews,
		PersonalizedAvg: detail.PersonalizedAvg,
		Ratings:         dto.NewPaginatedRatingResponse(ratings, int(detail.RatingsTotal), page, pageSize),
	})
}

// Create handles POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var in dto.CreateCourseDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	course, err := h.svc.Create(ctx, in.Name, in.Faculty, in.Institute, in.SubjectArea)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCourseNameRequired), errors.Is(err, service.ErrClassificationIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToCourseResponse(course))
}

// Import handles POST /api/courses/import with a CSV file upload
func (h *CourseHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload file"})
		return
	}
	defer file.Close()

	// imports can be large, give them more room than interactive requests
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	report, err := h.svc.ImportCSV(ctx, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
