package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns every class with its current number of students.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	const query = `SELECT c.class_id, c.class_name, c.head_teacher_id, COUNT(s.student_id) AS student_count
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.class_id
		GROUP BY c.class_id, c.class_name, c.head_teacher_id
		ORDER BY c.class_id`
	classes := make([]models.Class, 0)
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// Create inserts a class. A new class has no students.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (class_id, class_name, head_teacher_id) VALUES (:class_id, :class_name, :head_teacher_id)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", translateError(err))
	}
	class.StudentCount = 0
	return nil
}
