package repository

import (
	"github.com/alexschwind/ratemycourses/internal/models"

	"gorm.io/gorm"
)

// VisitorRepository persists request log rows written by the tracking
// middleware.
type VisitorRepository interface {
	Create(visitor *models.Visitor) error
}

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(visitor *models.Visitor) error {
	return r.db.Create(visitor).Error
}
