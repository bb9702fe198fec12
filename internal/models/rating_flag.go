package models

import "time"

// RatingFlag records one user reporting one rating for moderator review.
// The composite unique index keeps repeat flags from piling up.
type RatingFlag struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RatingID  int64     `json:"rating_id" gorm:"not null;uniqueIndex:idx_flags_rating_user"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_flags_rating_user"`
	Reason    string    `json:"reason" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Rating Rating `json:"rating,omitempty" gorm:"foreignKey:RatingID;constraint:OnDelete:CASCADE;"`
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (RatingFlag) TableName() string {
	return "rating_flags"
}
