package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	SemesterSummer = "SS"
	SemesterWinter = "WS"

	// MinRatingYear is the earliest year a rating may refer to.
	MinRatingYear = 1990
)

// ValidSemester reports whether s is one of the two semester codes.
func ValidSemester(s string) bool {
	return s == SemesterSummer || s == SemesterWinter
}

type Rating struct {
	ID         int64                                    `json:"id" gorm:"primaryKey;autoIncrement"`
	CourseID   int64                                    `json:"course_id" gorm:"not null;uniqueIndex:idx_ratings_course_user"`
	UserID     string                                   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_course_user;index"`
	Overall    int                                      `json:"overall" gorm:"not null;check:overall >= 1 AND overall <= 5"`
	Year       int                                      `json:"year" gorm:"not null"`
	Semester   string                                   `json:"semester" gorm:"type:varchar(2);not null"`
	Scores     datatypes.JSONType[map[Dimension]int]    `json:"scores" gorm:"type:jsonb"`
	Comments   datatypes.JSONType[map[Dimension]string] `json:"comments" gorm:"type:jsonb"`
	IsDisabled bool                                     `json:"is_disabled" gorm:"not null;default:false;index"`
	CreatedAt  time.Time                                `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time                                `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`
}

// Term renders the semester the rating refers to, e.g. "WS 2024".
func (r *Rating) Term() string {
	return fmt.Sprintf("%s %d", r.Semester, r.Year)
}

func (Rating) TableName() string {
	return "ratings"
}
