package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

// WrongBookRepository reads per-student wrong word summaries.
type WrongBookRepository struct {
	db *sqlx.DB
}

// NewWrongBookRepository constructs a WrongBookRepository.
func NewWrongBookRepository(db *sqlx.DB) *WrongBookRepository {
	return &WrongBookRepository{db: db}
}

// List returns wrong books, optionally restricted to one student.
func (r *WrongBookRepository) List(ctx context.Context, studentID string) ([]models.WrongBook, error) {
	query := `SELECT book_id, student_id, word_count, create_time FROM wrong_books`
	var args []interface{}
	if studentID != "" {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY book_id`

	books := make([]models.WrongBook, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("list wrong books: %w", err)
	}
	return books, nil
}
