package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

// StatusRepository reports database level health information.
type StatusRepository struct {
	db *sqlx.DB
}

// NewStatusRepository constructs a StatusRepository.
func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Ping checks connectivity.
func (r *StatusRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Counts returns the row count of every table in one round trip.
func (r *StatusRepository) Counts(ctx context.Context) (models.TableCounts, error) {
	const query = `SELECT
		(SELECT COUNT(*) FROM students) AS students,
		(SELECT COUNT(*) FROM teachers) AS teachers,
		(SELECT COUNT(*) FROM admins) AS admins,
		(SELECT COUNT(*) FROM words) AS words,
		(SELECT COUNT(*) FROM tasks) AS tasks,
		(SELECT COUNT(*) FROM classes) AS classes,
		(SELECT COUNT(*) FROM wrong_books) AS wrong_books,
		(SELECT COUNT(*) FROM scores) AS scores`
	var counts models.TableCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return models.TableCounts{}, fmt.Errorf("count tables: %w", err)
	}
	return counts, nil
}
