package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type statusService interface {
	Status(ctx context.Context) models.SystemStatus
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	status  statusService
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, status statusService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, status: status}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.ErrorEnvelope
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	if err := h.status.Ping(c.Request.Context()); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "database unavailable"))
		return
	}
	response.OK(c, "", gin.H{"status": "healthy", "message": "WordUp API is running"})
}

// Status godoc
// @Summary System status
// @Description Table sizes, process health and a metrics snapshot.
// @Tags System
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /status [get]
func (h *MetricsHandler) Status(c *gin.Context) {
	status := h.status.Status(c.Request.Context())
	message := "system healthy"
	if !status.Healthy {
		message = "system degraded"
	}
	response.OK(c, message, status)
}
