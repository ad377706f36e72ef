package service

import (
	"context"

	"github.com/noah-isme/wordup-api/internal/models"
)

type wrongBookRepository interface {
	List(ctx context.Context, studentID string) ([]models.WrongBook, error)
}

// WrongBookService exposes wrong book summaries.
type WrongBookService struct {
	repo wrongBookRepository
}

// NewWrongBookService constructs a WrongBookService.
func NewWrongBookService(repo wrongBookRepository) *WrongBookService {
	return &WrongBookService{repo: repo}
}

// List returns wrong books, restricted to studentID when it is not empty.
func (s *WrongBookService) List(ctx context.Context, studentID string) ([]models.WrongBook, error) {
	books, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, internalError(err, "failed to list wrong books")
	}
	return books, nil
}
