package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type userService interface {
	ListAll(ctx context.Context) ([]models.UserListItem, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.UserListItem, error)
	Create(ctx context.Context, req service.CreateUserRequest) (string, error)
	Update(ctx context.Context, userType, id string, req service.UpdateUserRequest) error
	Delete(ctx context.Context, userType, id string) error
}

// UserHandler exposes administrative account management.
type UserHandler struct {
	service userService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// ListAll godoc
// @Summary List every account
// @Description Students, then teachers, then admins, each tagged with its role.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /users/all [get]
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", users)
}

// ListStudents godoc
// @Summary List students
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users/students [get]
func (h *UserHandler) ListStudents(c *gin.Context) {
	h.listRole(c, models.RoleStudent)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users/teachers [get]
func (h *UserHandler) ListTeachers(c *gin.Context) {
	h.listRole(c, models.RoleTeacher)
}

func (h *UserHandler) listRole(c *gin.Context, role models.Role) {
	users, err := h.service.ListByRole(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", users)
}

// Create godoc
// @Summary Create account
// @Description The id is generated as the next <role>NNN.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateUserRequest true "Account payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /users/create [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user created", gin.H{"user_id": id})
}

// Update godoc
// @Summary Update account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "student, teacher or admin"
// @Param id path string true "User ID"
// @Param payload body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/{type}/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("type"), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user updated", nil)
}

// Delete godoc
// @Summary Delete account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param type path string true "student, teacher or admin"
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/{type}/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("type"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user deleted", nil)
}
