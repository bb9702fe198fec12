package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile stores the per-user scoring preferences: one weight per
// dimension plus the preferred practical/theoretical balance. Every user gets
// a profile with default values at registration time.
type UserProfile struct {
	ID                  int64                                 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID              string                                `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Weights             datatypes.JSONType[map[Dimension]int] `json:"weights" gorm:"type:jsonb"`
	PracticalPreference int                                   `json:"practical_preference" gorm:"not null;default:50;check:practical_preference >= 0 AND practical_preference <= 100"`
	CreatedAt           time.Time                             `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time                             `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// NewDefaultProfile builds the profile seeded for a fresh user.
func NewDefaultProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:              userID,
		Weights:             datatypes.NewJSONType(DefaultWeights()),
		PracticalPreference: DefaultPracticalPreference,
	}
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
