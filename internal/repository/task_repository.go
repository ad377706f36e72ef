package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

// TaskRepository manages persistence for tasks.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs a TaskRepository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns every task ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	const query = `SELECT task_id, task_name, description, start_time, end_time FROM tasks ORDER BY task_id`
	tasks := make([]models.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a task and sets its generated id.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	const query = `INSERT INTO tasks (task_name, description, start_time, end_time) VALUES ($1, $2, $3, $4) RETURNING task_id`
	if err := r.db.QueryRowxContext(ctx, query, task.TaskName, task.Description, task.StartTime, task.EndTime).Scan(&task.ID); err != nil {
		return fmt.Errorf("create task: %w", translateError(err))
	}
	return nil
}
