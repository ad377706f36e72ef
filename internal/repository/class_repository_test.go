package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
)

func TestClassRepositoryListDerivesStudentCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"class_id", "class_name", "head_teacher_id", "student_count"}).
		AddRow("class001", "Class One", "teacher001", 2).
		AddRow("class002", "Class Two", nil, 0)
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(s.student_id) AS student_count")).WillReturnRows(rows)

	classes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, 2, classes[0].StudentCount)
	assert.Nil(t, classes[1].HeadTeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryCreateUnknownTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("INSERT INTO classes").WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	head := "teacher999"
	err := repo.Create(context.Background(), &models.Class{ClassID: "class003", ClassName: "Three", HeadTeacherID: &head})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReference))
}
