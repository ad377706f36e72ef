package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
)

var wordColumns = []string{"word_id", "content", "meaning", "speech", "is_wrong"}

func TestWordRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(1, "abandon", "to give up", "v.", false).
		AddRow(2, "ability", "capacity", nil, true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT word_id, content, meaning, speech, is_wrong FROM words ORDER BY word_id")).
		WillReturnRows(rows)

	words, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "v.", *words[0].Speech)
	assert.Nil(t, words[1].Speech)
	assert.True(t, words[1].IsWrong)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepositoryListEmptyIsNotNil(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectQuery("FROM words").WillReturnRows(sqlmock.NewRows(wordColumns))

	words, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestWordRepositorySearchEscapesWildcards(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE content LIKE $1")).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows(wordColumns))

	_, err := repo.Search(context.Background(), "50%_off")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectQuery("INSERT INTO words").
		WithArgs("abandon", "to give up", sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"word_id"}).AddRow(7))

	word := &models.Word{Content: "abandon", Meaning: "to give up"}
	require.NoError(t, repo.Create(context.Background(), word))
	assert.Equal(t, int64(7), word.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepositoryCreateBatchCommits(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO words").WithArgs("a", "first", sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows([]string{"word_id"}).AddRow(10))
	mock.ExpectQuery("INSERT INTO words").WithArgs("b", "second", sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"word_id"}).AddRow(11))
	mock.ExpectCommit()

	words := []models.Word{{Content: "a", Meaning: "first"}, {Content: "b", Meaning: "second", IsWrong: true}}
	require.NoError(t, repo.CreateBatch(context.Background(), words))
	assert.Equal(t, int64(10), words[0].ID)
	assert.Equal(t, int64(11), words[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepositoryCreateBatchRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO words").WillReturnRows(sqlmock.NewRows([]string{"word_id"}).AddRow(10))
	mock.ExpectQuery("INSERT INTO words").WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	err := repo.CreateBatch(context.Background(), []models.Word{{Content: "a", Meaning: "x"}, {Content: "b", Meaning: "y"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert batch word 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectExec("UPDATE words SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Word{ID: 99, Content: "x", Meaning: "y"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWordRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWordRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM words WHERE word_id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
