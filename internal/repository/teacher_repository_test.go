package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
)

func TestTeacherRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"teacher_id", "name", "account", "password_hash"}).
		AddRow("teacher001", "Test Teacher", "testteacher", "hash").
		AddRow("teacher002", "Other", "other", "hash")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT teacher_id, name, account, password_hash FROM teachers ORDER BY teacher_id")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "teacher002", list[1].TeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("UPDATE teachers SET name").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &models.Teacher{TeacherID: "teacher001", Name: "Renamed", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreateWithNextIDSkipsMalformedIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WithArgs("teachers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SUBSTRING(teacher_id FROM 8)")).
		WithArgs("^teacher[0-9]+$").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(41))
	mock.ExpectExec("INSERT INTO teachers").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	teacher := &models.Teacher{Name: "T", Account: "t", PasswordHash: "hash"}
	require.NoError(t, repo.CreateWithNextID(context.Background(), teacher))
	assert.Equal(t, "teacher042", teacher.TeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
