package models

import "time"

type Course struct {
	ID            int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string       `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Slug          string       `gorm:"type:varchar(300);not null;uniqueIndex" json:"slug"`
	SubjectAreaID *int64       `gorm:"index" json:"subject_area_id,omitempty"`
	SubjectArea   *SubjectArea `gorm:"foreignKey:SubjectAreaID;constraint:OnDelete:SET NULL" json:"subject_area,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
