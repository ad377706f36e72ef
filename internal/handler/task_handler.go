package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type taskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, req service.CreateTaskRequest) (*models.Task, error)
}

// TaskHandler exposes task endpoints.
type TaskHandler struct {
	service taskService
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(svc taskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// List godoc
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tasks/ [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", tasks)
}

// Create godoc
// @Summary Publish task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /tasks/ [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	task, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "task created", task)
}
