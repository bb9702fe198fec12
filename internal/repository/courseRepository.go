package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexschwind/ratemycourses/internal/models"

	"gorm.io/gorm"
)

// Sort orders accepted by CourseRepository.List. A leading dash flips the
// direction, mirroring the query parameter format.
const (
	SortNameAsc    = "name"
	SortNameDesc   = "-name"
	SortRatingAsc  = "rating"
	SortRatingDesc = "-rating"
)

// ValidSort reports whether s is one of the supported sort orders.
func ValidSort(s string) bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortRatingAsc, SortRatingDesc:
		return true
	}
	return false
}

// CourseListOptions carries the catalog query parameters.
type CourseListOptions struct {
	Search   string
	Sort     string
	Page     int
	PageSize int
}

// CourseListItem is one catalog row: course columns plus aggregates computed
// over visible ratings only. AverageRating is nil for unrated courses.
type CourseListItem struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int64    `json:"rating_count"`
}

type CourseRepository interface {
	List(ctx context.Context, opts CourseListOptions) ([]CourseListItem, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	EnsureClassification(ctx context.Context, faculty, institute, subjectArea string) (*models.SubjectArea, error)
	Aggregate(ctx context.Context, courseID int64) (avg float64, count int64, err error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// List returns one page of the catalog with per-course rating aggregates.
// Disabled ratings are excluded from the aggregates by the join condition,
// so a fully moderated course shows up unrated rather than vanishing.
func (r *courseRepository) List(ctx context.Context, opts CourseListOptions) ([]CourseListItem, int64, error) {
	countQuery := r.db.WithContext(ctx).Model(&models.Course{})
	listQuery := r.db.WithContext(ctx).Model(&models.Course{}).
		Select("courses.id, courses.name, courses.slug, AVG(ratings.overall) AS average_rating, COUNT(ratings.id) AS rating_count").
		Joins("LEFT JOIN ratings ON ratings.course_id = courses.id AND ratings.is_disabled = ?", false).
		Group("courses.id")

	// Token search on the name, every token has to match somewhere.
	if tokens := strings.Fields(opts.Search); len(tokens) > 0 {
		clauses := make([]string, 0, len(tokens))
		args := make([]interface{}, 0, len(tokens))
		for _, t := range tokens {
			clauses = append(clauses, "courses.name ILIKE ?")
			args = append(args, "%"+t+"%")
		}
		where := strings.Join(clauses, " AND ")
		countQuery = countQuery.Where(where, args...)
		listQuery = listQuery.Where(where, args...)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Unrated courses sort with an average of zero.
	var order string
	switch opts.Sort {
	case SortNameDesc:
		order = "courses.name DESC"
	case SortRatingAsc:
		order = "COALESCE(AVG(ratings.overall), 0) ASC, courses.name ASC"
	case SortRatingDesc:
		order = "COALESCE(AVG(ratings.overall), 0) DESC, courses.name ASC"
	default:
		order = "courses.name ASC"
	}

	offset := (opts.Page - 1) * opts.PageSize
	var items []CourseListItem
	if err := listQuery.
		Order(order).
		Limit(opts.PageSize).
		Offset(offset).
		Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *courseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).
		Preload("SubjectArea.Institute.Faculty").
		Where("slug = ?", slug).
		First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// EnsureClassification walks the faculty > institute > subject area chain,
// creating missing levels, and returns the subject area leaf.
func (r *courseRepository) EnsureClassification(ctx context.Context, faculty, institute, subjectArea string) (*models.SubjectArea, error) {
	var leaf models.SubjectArea

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fac models.Faculty
		if err := tx.Where(models.Faculty{Name: faculty}).FirstOrCreate(&fac).Error; err != nil {
			return fmt.Errorf("ensure faculty: %w", err)
		}

		var inst models.Institute
		if err := tx.Where(models.Institute{Name: institute, FacultyID: fac.ID}).FirstOrCreate(&inst).Error; err != nil {
			return fmt.Errorf("ensure institute: %w", err)
		}

		if err := tx.Where(models.SubjectArea{Name: subjectArea, InstituteID: inst.ID}).FirstOrCreate(&leaf).Error; err != nil {
			return fmt.Errorf("ensure subject area: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &leaf, nil
}

// Aggregate calculates the average overall rating and the rating count for a
// course over visible ratings.
func (r *courseRepository) Aggregate(ctx context.Context, courseID int64) (float64, int64, error) {
	var agg struct {
		Average float64
		Total   int64
	}

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(overall), 0) as average, COUNT(*) as total").
		Scopes(Visible).
		Where("course_id = ?", courseID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	return agg.Average, agg.Total, nil
}
