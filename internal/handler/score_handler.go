package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type scoreService interface {
	List(ctx context.Context) ([]models.Score, error)
	Create(ctx context.Context, req service.CreateScoreRequest) (*models.Score, error)
}

type wrongBookService interface {
	List(ctx context.Context, studentID string) ([]models.WrongBook, error)
}

// ScoreHandler exposes score and wrong book endpoints.
type ScoreHandler struct {
	scores     scoreService
	wrongBooks wrongBookService
}

// NewScoreHandler constructs a ScoreHandler.
func NewScoreHandler(scores scoreService, wrongBooks wrongBookService) *ScoreHandler {
	return &ScoreHandler{scores: scores, wrongBooks: wrongBooks}
}

// List godoc
// @Summary List scores
// @Tags Scores
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /scores/ [get]
func (h *ScoreHandler) List(c *gin.Context) {
	scores, err := h.scores.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", scores)
}

// Create godoc
// @Summary Record score
// @Tags Scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateScoreRequest true "Score payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /scores/ [post]
func (h *ScoreHandler) Create(c *gin.Context) {
	var req service.CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	score, err := h.scores.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "score recorded", score)
}

// ListWrongBooks godoc
// @Summary List wrong books
// @Tags Scores
// @Produce json
// @Param student_id query string false "Only this student's books"
// @Success 200 {object} response.Envelope
// @Router /wrongbooks/ [get]
func (h *ScoreHandler) ListWrongBooks(c *gin.Context) {
	books, err := h.wrongBooks.List(c.Request.Context(), c.Query("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", books)
}
