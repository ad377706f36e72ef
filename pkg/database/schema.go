package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements creates every table the API reads or writes. Order matters for
// foreign keys. Statements are idempotent so they run on every boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teachers (
		teacher_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		account VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		class_id VARCHAR(20) PRIMARY KEY,
		class_name VARCHAR(100) NOT NULL,
		head_teacher_id VARCHAR(20) REFERENCES teachers(teacher_id)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		student_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		account VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		class_id VARCHAR(20) REFERENCES classes(class_id)
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		admin_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		account VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		email VARCHAR(100),
		phone VARCHAR(20),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS words (
		word_id SERIAL PRIMARY KEY,
		content VARCHAR(100) NOT NULL,
		meaning TEXT NOT NULL,
		speech VARCHAR(20),
		is_wrong BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		task_id SERIAL PRIMARY KEY,
		task_name VARCHAR(100) NOT NULL,
		description TEXT,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wrong_books (
		book_id SERIAL PRIMARY KEY,
		student_id VARCHAR(20) NOT NULL REFERENCES students(student_id),
		word_count INTEGER,
		create_time TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		score_id SERIAL PRIMARY KEY,
		student_id VARCHAR(20) NOT NULL REFERENCES students(student_id),
		task_id INTEGER NOT NULL REFERENCES tasks(task_id),
		score NUMERIC(5, 2),
		comment VARCHAR(255)
	)`,
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
