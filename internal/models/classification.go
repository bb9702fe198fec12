package models

import "time"

// Faculty, Institute and SubjectArea form the three-level organizational
// hierarchy a course can be attached to. The chain is optional per course.

type Faculty struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Faculty) TableName() string {
	return "faculties"
}

type Institute struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_institutes_faculty_name" json:"name"`
	FacultyID int64     `gorm:"not null;uniqueIndex:idx_institutes_faculty_name;index" json:"faculty_id"`
	Faculty   *Faculty  `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"faculty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Institute) TableName() string {
	return "institutes"
}

type SubjectArea struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_subject_areas_institute_name" json:"name"`
	InstituteID int64      `gorm:"not null;uniqueIndex:idx_subject_areas_institute_name;index" json:"institute_id"`
	Institute   *Institute `gorm:"foreignKey:InstituteID;constraint:OnDelete:CASCADE" json:"institute,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (SubjectArea) TableName() string {
	return "subject_areas"
}
