package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/wordup-api/internal/models"
)

type statusRepository interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (models.TableCounts, error)
}

// StatusService assembles the system status report.
type StatusService struct {
	repo      statusRepository
	metrics   *MetricsService
	version   string
	startedAt time.Time
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatusService constructs a StatusService.
func NewStatusService(repo statusRepository, metrics *MetricsService, version string, logger *zap.Logger) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{repo: repo, metrics: metrics, version: version, startedAt: time.Now(), logger: logger, now: time.Now}
}

// Status reports table sizes and process health. A failing database is reported as
// unhealthy rather than returned as an error.
func (s *StatusService) Status(ctx context.Context) models.SystemStatus {
	now := s.now()
	status := models.SystemStatus{
		Timestamp: now.Format(models.DateTimeLayout),
		System: models.SystemInfo{
			Status:  "ok",
			Version: s.version,
			Uptime:  now.Sub(s.startedAt).Truncate(time.Second).String(),
		},
		Metrics: s.metrics.Snapshot(),
		Healthy: true,
	}

	start := time.Now()
	counts, err := s.repo.Counts(ctx)
	s.metrics.ObserveDBQuery("status_counts", time.Since(start))
	if err != nil {
		s.logger.Error("status table counts failed", zap.Error(err))
		status.System.Status = "degraded"
		status.Healthy = false
		return status
	}
	status.Database = counts
	return status
}

// Ping checks database connectivity.
func (s *StatusService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
