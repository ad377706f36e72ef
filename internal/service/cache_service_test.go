package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingCacheRepo struct{ err error }

func (f failingCacheRepo) Get(ctx context.Context, key string, dest interface{}) error { return f.err }
func (f failingCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return f.err
}
func (f failingCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error { return f.err }

func TestCacheServiceDisabledIsAlwaysMiss(t *testing.T) {
	repo := newMemoryCacheRepo()
	svc := NewCacheService(repo, nil, 0, zap.NewNop(), false)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, repo.entries)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.NoError(t, nilSvc.Invalidate(context.Background(), "*"))
}

func TestCacheServiceRoundTripRecordsMetrics(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCacheService(newMemoryCacheRepo(), metrics, time.Minute, zap.NewNop(), true)

	var out []string
	hit, err := svc.Get(context.Background(), "words:all", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "words:all", []string{"apple"}, 0))
	hit, err = svc.Get(context.Background(), "words:all", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"apple"}, out)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.CacheHits)
	assert.Equal(t, uint64(1), snapshot.CacheMisses)
	assert.InDelta(t, 0.5, snapshot.CacheHitRatio, 0.0001)
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	svc := NewCacheService(failingCacheRepo{err: errors.New("connection refused")}, nil, 0, zap.NewNop(), true)

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	assert.False(t, hit)
	assert.Error(t, err)
	assert.Error(t, svc.Invalidate(context.Background(), "k*"))
}
