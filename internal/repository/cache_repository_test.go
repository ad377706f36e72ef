package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
)

func TestCacheRepositoryWithoutRedis(t *testing.T) {
	repo := NewCacheRepository(nil, "wordup", nil)

	var dest []string
	err := repo.Get(context.Background(), "words:all", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	require.NoError(t, repo.Set(context.Background(), "words:all", []string{"a"}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(context.Background(), "words:*"))
	assert.Equal(t, "wordup:words:all", repo.key("words:all"))
}

func TestTokenRepositoryWithoutRedis(t *testing.T) {
	repo := NewTokenRepository(nil)

	assert.False(t, repo.Enabled())
	require.NoError(t, repo.Revoke(context.Background(), "jti", time.Hour))
	revoked, err := repo.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}
