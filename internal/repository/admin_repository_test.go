package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/wordup-api/internal/models"
)

func TestAdminRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"admin_id", "name", "account", "password_hash", "email", "phone", "created_at", "updated_at"}).
		AddRow("admin001", "Admin", "admin", "hash", "admin@wordup.local", nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE admin_id = $1")).
		WithArgs("admin001").
		WillReturnRows(rows)

	admin, err := repo.FindByID(context.Background(), "admin001")
	require.NoError(t, err)
	require.NotNil(t, admin.Email)
	assert.Equal(t, "admin@wordup.local", *admin.Email)
	assert.Nil(t, admin.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryCreateSetsTimestamps(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectExec("INSERT INTO admins").WillReturnResult(sqlmock.NewResult(1, 1))

	admin := &models.Admin{AdminID: "admin002", Name: "Second", Account: "second", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), admin))
	assert.False(t, admin.CreatedAt.IsZero())
	assert.False(t, admin.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
