package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/repository"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

type scoreRepository interface {
	List(ctx context.Context) ([]models.Score, error)
	Create(ctx context.Context, score *models.Score) error
}

// CreateScoreRequest represents payload for recording a score.
type CreateScoreRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	TaskID    int64    `json:"task_id" validate:"required"`
	Score     *float64 `json:"score" validate:"omitempty,min=0,max=999.99"`
	Comment   *string  `json:"comment"`
}

// ScoreService exposes score listing and recording.
type ScoreService struct {
	repo      scoreRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScoreService constructs a ScoreService.
func NewScoreService(repo scoreRepository, validate *validator.Validate, logger *zap.Logger) *ScoreService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{repo: repo, validator: validate, logger: logger}
}

// List returns all scores.
func (s *ScoreService) List(ctx context.Context) ([]models.Score, error) {
	scores, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list scores")
	}
	return scores, nil
}

// Create records a score for a student on a task.
func (s *ScoreService) Create(ctx context.Context, req CreateScoreRequest) (*models.Score, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	score := &models.Score{StudentID: req.StudentID, TaskID: req.TaskID, Score: req.Score, Comment: normalizeOptional(req.Comment)}
	if err := s.repo.Create(ctx, score); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student or task does not exist")
		}
		return nil, internalError(err, "failed to record score")
	}
	return score, nil
}
