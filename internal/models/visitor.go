package models

import "time"

// Visitor is one logged request. Rows are written by the tracking middleware
// for successful responses only and never block the request that produced
// them.
type Visitor struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45);not null;index"`
	Method    string    `json:"method" gorm:"type:varchar(10);not null"`
	Path      string    `json:"path" gorm:"type:varchar(500);not null;index"`
	Query     string    `json:"query" gorm:"type:varchar(1000)"`
	Referer   string    `json:"referer" gorm:"type:varchar(500)"`
	UserAgent string    `json:"user_agent" gorm:"type:varchar(500)"`
	Status    int       `json:"status" gorm:"not null"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Visitor) TableName() string {
	return "visitors"
}
