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

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	Create(ctx context.Context, class *models.Class) error
}

// CreateClassRequest represents payload for creating classes.
type CreateClassRequest struct {
	ClassID       string  `json:"class_id" validate:"required"`
	ClassName     string  `json:"class_name" validate:"required"`
	HeadTeacherID *string `json:"head_teacher_id"`
}

// ClassService exposes class listing and creation.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// List returns all classes.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list classes")
	}
	return classes, nil
}

// Create inserts a class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	class := &models.Class{ClassID: req.ClassID, ClassName: req.ClassName, HeadTeacherID: normalizeOptional(req.HeadTeacherID)}
	if err := s.repo.Create(ctx, class); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "class already exists")
		case errors.Is(err, repository.ErrReference):
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "head teacher does not exist")
		}
		return nil, internalError(err, "failed to create class")
	}
	return class, nil
}
