package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

const studentColumns = `student_id, name, account, password_hash, class_id`

const insertStudentQuery = `INSERT INTO students (student_id, name, account, password_hash, class_id)
	VALUES (:student_id, :name, :account, :password_hash, :class_id)`

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students ORDER BY student_id", studentColumns)
	students := make([]models.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by id.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE student_id = $1", studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByAccount fetches a student by login account.
func (r *StudentRepository) FindByAccount(ctx context.Context, account string) (*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE account = $1", studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, account); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByAccount checks whether the account is taken.
func (r *StudentRepository) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM students WHERE account = $1 LIMIT 1`, account); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student account: %w", err)
	}
	return true, nil
}

// Create inserts a student with a caller supplied id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if _, err := r.db.NamedExecContext(ctx, insertStudentQuery, student); err != nil {
		return fmt.Errorf("create student: %w", translateError(err))
	}
	return nil
}

// CreateWithNextID inserts a student under the next "studentNNN" id.
func (r *StudentRepository) CreateWithNextID(ctx context.Context, student *models.Student) error {
	return insertWithSequentialID(ctx, r.db, "students", "student_id", models.RoleStudent.IDPrefix(),
		func(id string) { student.StudentID = id },
		func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, insertStudentQuery, student); err != nil {
				return fmt.Errorf("create student: %w", translateError(err))
			}
			return nil
		})
}

// Update overwrites the mutable columns of a student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET name = :name, password_hash = :password_hash, class_id = :class_id WHERE student_id = :student_id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student: %w", translateError(err))
	}
	return nil
}

// Delete removes a student. Scores and wrong books are left in place.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", translateError(err))
	}
	return expectAffected(res)
}

// expectAffected turns a zero-row write into sql.ErrNoRows.
func expectAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
