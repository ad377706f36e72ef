package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

const (
	wordListCacheKey     = "words:all"
	wordCacheInvalidator = "words:*"
)

type wordRepository interface {
	List(ctx context.Context) ([]models.Word, error)
	FindByID(ctx context.Context, id int64) (*models.Word, error)
	Search(ctx context.Context, keyword string) ([]models.Word, error)
	Create(ctx context.Context, word *models.Word) error
	CreateBatch(ctx context.Context, words []models.Word) error
	Update(ctx context.Context, word *models.Word) error
	Delete(ctx context.Context, id int64) error
}

// CreateWordRequest represents payload for adding a word.
type CreateWordRequest struct {
	Content string  `json:"content" validate:"required"`
	Meaning string  `json:"meaning" validate:"required"`
	Speech  *string `json:"speech"`
	IsWrong *bool   `json:"is_wrong"`
}

func (r CreateWordRequest) toModel() models.Word {
	word := models.Word{Content: r.Content, Meaning: r.Meaning, Speech: r.Speech}
	if r.IsWrong != nil {
		word.IsWrong = *r.IsWrong
	}
	return word
}

// BatchImportRequest wraps several words imported atomically.
type BatchImportRequest struct {
	Words []CreateWordRequest `json:"words" validate:"dive"`
}

// UpdateWordRequest is a partial update; absent keys keep their stored value.
type UpdateWordRequest struct {
	Content *string               `json:"content"`
	Meaning *string               `json:"meaning"`
	Speech  models.OptionalString `json:"speech"`
	IsWrong *bool                 `json:"is_wrong"`
}

// WordService orchestrates vocabulary operations.
type WordService struct {
	repo      wordRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger

	// generation advances on every write so a list read that overlaps a write is not cached.
	generation atomic.Uint64
}

// NewWordService constructs a WordService. cache and metrics may be nil.
func NewWordService(repo wordRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *WordService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WordService{repo: repo, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns every word, served from cache when enabled.
func (s *WordService) List(ctx context.Context) ([]models.Word, error) {
	var cached []models.Word
	if hit, err := s.cache.Get(ctx, wordListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	gen := s.generation.Load()
	start := time.Now()
	words, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("words_list", time.Since(start))
	if err != nil {
		return nil, internalError(err, "failed to list words")
	}

	if s.generation.Load() != gen {
		return words, nil
	}
	_ = s.cache.Set(ctx, wordListCacheKey, words, 0)
	if s.generation.Load() != gen {
		// a write landed between the check and the store
		s.dropCache(ctx)
	}
	return words, nil
}

// Get returns a single word.
func (s *WordService) Get(ctx context.Context, id int64) (*models.Word, error) {
	word, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "word not found")
		}
		return nil, internalError(err, "failed to load word")
	}
	return word, nil
}

// Create adds a word. is_wrong defaults to false.
func (s *WordService) Create(ctx context.Context, req CreateWordRequest) (*models.Word, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	word := req.toModel()
	if err := s.repo.Create(ctx, &word); err != nil {
		return nil, internalError(err, "failed to add word")
	}
	s.metrics.RecordWordWrite(WordWriteCreate, 1)
	s.invalidate(ctx)
	return &word, nil
}

// BatchImport inserts every word or none of them and returns how many were stored.
func (s *WordService) BatchImport(ctx context.Context, req BatchImportRequest) (int, error) {
	if len(req.Words) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "missing word data")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, validationError(err)
	}

	words := make([]models.Word, len(req.Words))
	for i, item := range req.Words {
		words[i] = item.toModel()
	}
	if err := s.repo.CreateBatch(ctx, words); err != nil {
		return 0, internalError(err, "batch import failed")
	}
	s.metrics.RecordWordWrite(WordWriteBatch, len(words))

	s.invalidate(ctx)
	s.logger.Info("words imported", zap.Int("count", len(words)))
	return len(words), nil
}

// Update merges the present fields into the stored word.
func (s *WordService) Update(ctx context.Context, id int64, req UpdateWordRequest) (*models.Word, error) {
	word, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		word.Content = *req.Content
	}
	if req.Meaning != nil {
		word.Meaning = *req.Meaning
	}
	req.Speech.Apply(&word.Speech)
	if req.IsWrong != nil {
		word.IsWrong = *req.IsWrong
	}

	if err := s.repo.Update(ctx, word); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "word not found")
		}
		return nil, internalError(err, "failed to update word")
	}
	s.metrics.RecordWordWrite(WordWriteUpdate, 1)
	s.invalidate(ctx)
	return word, nil
}

// Delete removes a word.
func (s *WordService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "word not found")
		}
		return internalError(err, "failed to delete word")
	}
	s.metrics.RecordWordWrite(WordWriteDelete, 1)
	s.invalidate(ctx)
	return nil
}

// Search finds words whose content or meaning contains keyword.
func (s *WordService) Search(ctx context.Context, keyword string) ([]models.Word, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search keyword is required")
	}

	start := time.Now()
	words, err := s.repo.Search(ctx, keyword)
	s.metrics.ObserveDBQuery("words_search", time.Since(start))
	if err != nil {
		return nil, internalError(err, "search failed")
	}
	return words, nil
}

func (s *WordService) invalidate(ctx context.Context) {
	s.generation.Add(1)
	s.dropCache(ctx)
}

func (s *WordService) dropCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, wordCacheInvalidator); err != nil {
		s.logger.Warn("word cache invalidation failed", zap.Error(err))
	}
}
