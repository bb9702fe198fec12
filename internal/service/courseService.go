package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"
	"github.com/alexschwind/ratemycourses/internal/scoring"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var (
	ErrCourseNotFound           = errors.New("course not found")
	ErrCourseExists             = errors.New("course already exists")
	ErrCourseNameRequired       = errors.New("course name required")
	ErrClassificationIncomplete = errors.New("classification requires faculty, institute and subject area together")
)

const maxSlugLength = 300

// CourseDetail bundles everything the course page shows: the course itself,
// community aggregates, the requested page of visible ratings and, when the
// viewer has a scoring profile, scores personalized to their weights.
type CourseDetail struct {
	Course          *models.Course
	AverageRating   *float64
	RatingCount     int64
	PageViews       int64
	Ratings         []models.Rating
	RatingsTotal    int64
	Personalized    map[int64]*float64
	PersonalizedAvg *float64
}

// ImportReport summarizes one CSV import run.
type ImportReport struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type CourseService interface {
	List(ctx context.Context, opts repository.CourseListOptions) ([]repository.CourseListItem, int64, error)
	GetDetail(ctx context.Context, slug, viewerID string, page, pageSize int) (*CourseDetail, error)
	Create(ctx context.Context, name, faculty, institute, subjectArea string) (*models.Course, error)
	ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error)
}

type courseService struct {
	courseRepo  repository.CourseRepository
	ratingRepo  repository.RatingRepository
	profileRepo repository.ProfileRepository
	pageViews   *repository.PageViewRedisRepo
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	ratingRepo repository.RatingRepository,
	profileRepo repository.ProfileRepository,
	pageViews *repository.PageViewRedisRepo,
) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		ratingRepo:  ratingRepo,
		profileRepo: profileRepo,
		pageViews:   pageViews,
	}
}

func (s *courseService) List(ctx context.Context, opts repository.CourseListOptions) ([]repository.CourseListItem, int64, error) {
	return s.courseRepo.List(ctx, opts)
}

// GetDetail loads one course page. Viewing counts as a page view.
func (s *courseService) GetDetail(ctx context.Context, courseSlug, viewerID string, page, pageSize int) (*CourseDetail, error) {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	avg, count, err := s.courseRepo.Aggregate(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetVisibleByCourse(course.ID, page, pageSize)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{
		Course:       course,
		RatingCount:  count,
		Ratings:      ratings,
		RatingsTotal: total,
	}
	if count > 0 {
		rounded := scoring.Round2(avg)
		detail.AverageRating = &rounded
	}

	// view counter is best effort, the page renders without it
	if views, err := s.pageViews.IncrViews(ctx, courseSlug); err == nil {
		detail.PageViews = views
	}

	s.personalize(detail, course.ID, viewerID)

	return detail, nil
}

// personalize attaches per-rating scores computed under the viewer's weights
// plus their average over every visible rating of the course.
func (s *courseService) personalize(detail *CourseDetail, courseID int64, viewerID string) {
	if viewerID == "" {
		return
	}
	profile, err := s.profileRepo.GetByUserID(viewerID)
	if err != nil {
		return
	}

	weights := profile.Weights.Data()

	personalized := make(map[int64]*float64, len(detail.Ratings))
	for i := range detail.Ratings {
		r := &detail.Ratings[i]
		personalized[r.ID] = scoring.Compute(weights, profile.PracticalPreference, r.Scores.Data())
	}
	detail.Personalized = personalized

	all, err := s.ratingRepo.GetAllVisibleByCourse(courseID)
	if err != nil {
		return
	}
	scores := make([]*float64, 0, len(all))
	for i := range all {
		scores = append(scores, scoring.Compute(weights, profile.PracticalPreference, all[i].Scores.Data()))
	}
	detail.PersonalizedAvg = scoring.Mean(scores)
}

// Create adds a course to the catalog. The slug is derived from the name
// once and never changes afterwards. Classification is optional but has to
// be complete when given.
func (s *courseService) Create(ctx context.Context, name, faculty, institute, subjectArea string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCourseNameRequired
	}

	course := &models.Course{
		Name: name,
		Slug: makeSlug(name),
	}

	faculty = strings.TrimSpace(faculty)
	institute = strings.TrimSpace(institute)
	subjectArea = strings.TrimSpace(subjectArea)

	switch {
	case faculty == "" && institute == "" && subjectArea == "":
		// unclassified course
	case faculty != "" && institute != "" && subjectArea != "":
		leaf, err := s.courseRepo.EnsureClassification(ctx, faculty, institute, subjectArea)
		if err != nil {
			return nil, err
		}
		course.SubjectAreaID = &leaf.ID
	default:
		return nil, ErrClassificationIncomplete
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrCourseExists
		}
		return nil, err
	}

	return course, nil
}

// ImportCSV reads courses from a CSV stream. The header names the columns,
// only "name" is mandatory; "faculty", "institute" and "subject_area" attach
// classification when all three are present. Existing courses are skipped,
// bad rows are reported without aborting the run.
func (s *courseService) ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameCol, ok := columns["name"]
	if !ok {
		return nil, fmt.Errorf("csv header is missing the name column")
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	report := &ImportReport{}
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if nameCol >= len(record) || strings.TrimSpace(record[nameCol]) == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: empty course name", line))
			continue
		}

		_, err = s.Create(ctx,
			record[nameCol],
			field(record, "faculty"),
			field(record, "institute"),
			field(record, "subject_area"),
		)
		switch {
		case errors.Is(err, ErrCourseExists):
			report.Skipped++
		case err != nil:
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", line, err))
		default:
			report.Created++
		}
	}

	return report, nil
}

// makeSlug builds the URL identifier for a course name.
func makeSlug(name string) string {
	s := slug.Make(name)
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return s
}
