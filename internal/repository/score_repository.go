package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

// ScoreRepository manages persistence for task scores.
type ScoreRepository struct {
	db *sqlx.DB
}

// NewScoreRepository constructs a ScoreRepository.
func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// List returns every score ordered by id.
func (r *ScoreRepository) List(ctx context.Context) ([]models.Score, error) {
	const query = `SELECT score_id, student_id, task_id, score, comment FROM scores ORDER BY score_id`
	scores := make([]models.Score, 0)
	if err := r.db.SelectContext(ctx, &scores, query); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return scores, nil
}

// Create inserts a score. Unknown students or tasks yield ErrReference.
func (r *ScoreRepository) Create(ctx context.Context, score *models.Score) error {
	const query = `INSERT INTO scores (student_id, task_id, score, comment) VALUES ($1, $2, $3, $4) RETURNING score_id`
	if err := r.db.QueryRowxContext(ctx, query, score.StudentID, score.TaskID, score.Score, score.Comment).Scan(&score.ID); err != nil {
		return fmt.Errorf("create score: %w", translateError(err))
	}
	return nil
}
