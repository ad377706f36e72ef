package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type classService interface {
	List(ctx context.Context) ([]models.Class, error)
	Create(ctx context.Context, req service.CreateClassRequest) (*models.Class, error)
}

// ClassHandler exposes class endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes/ [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", classes)
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /classes/ [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "class created", class)
}
