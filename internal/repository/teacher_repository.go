package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

const insertTeacherQuery = `INSERT INTO teachers (teacher_id, name, account, password_hash)
	VALUES (:teacher_id, :name, :account, :password_hash)`

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	const query = `SELECT teacher_id, name, account, password_hash FROM teachers ORDER BY teacher_id`
	teachers := make([]models.Teacher, 0)
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	const query = `SELECT teacher_id, name, account, password_hash FROM teachers WHERE teacher_id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByAccount fetches a teacher by login account.
func (r *TeacherRepository) FindByAccount(ctx context.Context, account string) (*models.Teacher, error) {
	const query = `SELECT teacher_id, name, account, password_hash FROM teachers WHERE account = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, account); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByAccount checks whether the account is taken.
func (r *TeacherRepository) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM teachers WHERE account = $1 LIMIT 1`, account); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher account: %w", err)
	}
	return true, nil
}

// Create inserts a teacher with a caller supplied id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if _, err := r.db.NamedExecContext(ctx, insertTeacherQuery, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", translateError(err))
	}
	return nil
}

// CreateWithNextID inserts a teacher under the next "teacherNNN" id.
func (r *TeacherRepository) CreateWithNextID(ctx context.Context, teacher *models.Teacher) error {
	return insertWithSequentialID(ctx, r.db, "teachers", "teacher_id", models.RoleTeacher.IDPrefix(),
		func(id string) { teacher.TeacherID = id },
		func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, insertTeacherQuery, teacher); err != nil {
				return fmt.Errorf("create teacher: %w", translateError(err))
			}
			return nil
		})
}

// Update overwrites the mutable columns of a teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET name = :name, password_hash = :password_hash WHERE teacher_id = :teacher_id`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("update teacher: %w", translateError(err))
	}
	return nil
}

// Delete removes a teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE teacher_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", translateError(err))
	}
	return expectAffected(res)
}
