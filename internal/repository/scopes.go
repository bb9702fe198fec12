package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert collides with a unique index.
// Services translate it into their own conflict errors.
var ErrDuplicateKey = errors.New("duplicate key")

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Visible restricts a rating query to rows moderation has not disabled.
// Every public read goes through this scope; owner and admin reads skip it.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_disabled = ?", false)
}
