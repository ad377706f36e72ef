package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (*models.UserInfo, error)
	RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (*models.UserInfo, error)
	RegisterAdmin(ctx context.Context, req models.RegisterAdminRequest) (*models.UserInfo, error)
	Me(ctx context.Context, claims *models.JWTClaims) (*models.UserInfo, error)
	Logout(ctx context.Context, claims *models.JWTClaims) error
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate a student, teacher or admin by account and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "login successful", res)
}

// RegisterStudent godoc
// @Summary Register student
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /auth/register/student [post]
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	info, err := h.service.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "registration successful", info)
}

// RegisterTeacher godoc
// @Summary Register teacher
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterTeacherRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /auth/register/teacher [post]
func (h *AuthHandler) RegisterTeacher(c *gin.Context) {
	var req models.RegisterTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	info, err := h.service.RegisterTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "registration successful", info)
}

// RegisterAdmin godoc
// @Summary Register admin
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterAdminRequest true "Admin payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /auth/register/admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req models.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	info, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "registration successful", info)
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented token when one is sent. Always succeeds.
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), claimsFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "logged out", nil)
}

// Me godoc
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	info, err := h.service.Me(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", info)
}
