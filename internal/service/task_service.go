package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

type taskRepository interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
}

// CreateTaskRequest represents payload for publishing a task. Times accept RFC 3339
// or the zone-less "2006-01-02T15:04:05" form.
type CreateTaskRequest struct {
	TaskName    string  `json:"task_name" validate:"required"`
	Description *string `json:"description"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     string  `json:"end_time" validate:"required"`
}

// TaskService exposes task listing and creation.
type TaskService struct {
	repo      taskRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(repo taskRepository, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, validator: validate, logger: logger}
}

// List returns all tasks.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list tasks")
	}
	return tasks, nil
}

// Create inserts a task after checking its window.
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	start, err := parseDateTime(req.StartTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid field: start_time")
	}
	end, err := parseDateTime(req.EndTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid field: end_time")
	}
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_time must not be before start_time")
	}

	task := &models.Task{TaskName: req.TaskName, Description: normalizeOptional(req.Description), StartTime: start, EndTime: end}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, internalError(err, "failed to create task")
	}
	return task, nil
}

// parseDateTime normalises to UTC; the column and JSON keep wall-clock time only.
func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(models.DateTimeLayout, raw)
}
