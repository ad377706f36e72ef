package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

const insertWordQuery = `INSERT INTO words (content, meaning, speech, is_wrong) VALUES ($1, $2, $3, $4) RETURNING word_id`

// WordRepository manages persistence for vocabulary words.
type WordRepository struct {
	db *sqlx.DB
}

// NewWordRepository constructs a WordRepository.
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db}
}

// List returns every word ordered by id.
func (r *WordRepository) List(ctx context.Context) ([]models.Word, error) {
	const query = `SELECT word_id, content, meaning, speech, is_wrong FROM words ORDER BY word_id`
	words := make([]models.Word, 0)
	if err := r.db.SelectContext(ctx, &words, query); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// FindByID fetches a word by id.
func (r *WordRepository) FindByID(ctx context.Context, id int64) (*models.Word, error) {
	const query = `SELECT word_id, content, meaning, speech, is_wrong FROM words WHERE word_id = $1`
	var word models.Word
	if err := r.db.GetContext(ctx, &word, query, id); err != nil {
		return nil, err
	}
	return &word, nil
}

// Search returns words whose content or meaning contains keyword. Matching is case-sensitive
// and LIKE wildcards in keyword are treated literally.
func (r *WordRepository) Search(ctx context.Context, keyword string) ([]models.Word, error) {
	const query = `SELECT word_id, content, meaning, speech, is_wrong FROM words
		WHERE content LIKE $1 ESCAPE '\' OR meaning LIKE $1 ESCAPE '\' ORDER BY word_id`
	words := make([]models.Word, 0)
	if err := r.db.SelectContext(ctx, &words, query, "%"+escapeLike(keyword)+"%"); err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return words, nil
}

// Create inserts a word and sets its generated id.
func (r *WordRepository) Create(ctx context.Context, word *models.Word) error {
	if err := r.db.QueryRowxContext(ctx, insertWordQuery, word.Content, word.Meaning, word.Speech, word.IsWrong).Scan(&word.ID); err != nil {
		return fmt.Errorf("create word: %w", translateError(err))
	}
	return nil
}

// CreateBatch inserts all words in one transaction. Either every row persists or none does.
func (r *WordRepository) CreateBatch(ctx context.Context, words []models.Word) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin word batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i := range words {
		w := &words[i]
		if err = tx.QueryRowxContext(ctx, insertWordQuery, w.Content, w.Meaning, w.Speech, w.IsWrong).Scan(&w.ID); err != nil {
			return fmt.Errorf("insert batch word %d: %w", i, translateError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit word batch: %w", err)
	}
	return nil
}

// Update overwrites every column of the word.
func (r *WordRepository) Update(ctx context.Context, word *models.Word) error {
	const query = `UPDATE words SET content = :content, meaning = :meaning, speech = :speech, is_wrong = :is_wrong WHERE word_id = :word_id`
	res, err := r.db.NamedExecContext(ctx, query, word)
	if err != nil {
		return fmt.Errorf("update word: %w", translateError(err))
	}
	return expectAffected(res)
}

// Delete removes a word. It returns sql.ErrNoRows when nothing was deleted.
func (r *WordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE word_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return expectAffected(res)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
