package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/models"
	"github.com/noah-isme/wordup-api/internal/service"
	"github.com/noah-isme/wordup-api/pkg/response"
)

type wordService interface {
	List(ctx context.Context) ([]models.Word, error)
	Get(ctx context.Context, id int64) (*models.Word, error)
	Create(ctx context.Context, req service.CreateWordRequest) (*models.Word, error)
	BatchImport(ctx context.Context, req service.BatchImportRequest) (int, error)
	Update(ctx context.Context, id int64, req service.UpdateWordRequest) (*models.Word, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword string) ([]models.Word, error)
}

type wordExporter interface {
	ExportWords(ctx context.Context, format string) (*service.ExportFile, error)
}

// WordHandler exposes vocabulary endpoints.
type WordHandler struct {
	service  wordService
	exporter wordExporter
}

// NewWordHandler constructs a WordHandler.
func NewWordHandler(svc wordService, exporter wordExporter) *WordHandler {
	return &WordHandler{service: svc, exporter: exporter}
}

// List godoc
// @Summary List words
// @Tags Words
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /words/ [get]
func (h *WordHandler) List(c *gin.Context) {
	words, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", words)
}

// Get godoc
// @Summary Get word
// @Tags Words
// @Produce json
// @Param id path int true "Word ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /words/{id} [get]
func (h *WordHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	word, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", word)
}

// Create godoc
// @Summary Add word
// @Tags Words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateWordRequest true "Word payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /words/ [post]
func (h *WordHandler) Create(c *gin.Context) {
	var req service.CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	word, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "word added", word)
}

// BatchImport godoc
// @Summary Batch import words
// @Description Imports every word or none of them.
// @Tags Words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.BatchImportRequest true "Words"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /words/batch [post]
func (h *WordHandler) BatchImport(c *gin.Context) {
	var req service.BatchImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	count, err := h.service.BatchImport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("imported %d words", count), gin.H{"count": count})
}

// Update godoc
// @Summary Update word
// @Tags Words
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word ID"
// @Param payload body service.UpdateWordRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /words/{id} [put]
func (h *WordHandler) Update(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	word, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "word updated", word)
}

// Delete godoc
// @Summary Delete word
// @Tags Words
// @Produce json
// @Security BearerAuth
// @Param id path int true "Word ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /words/{id} [delete]
func (h *WordHandler) Delete(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "word deleted", nil)
}

// Search godoc
// @Summary Search words
// @Description Case-sensitive substring match over content or meaning.
// @Tags Words
// @Produce json
// @Param q query string true "Keyword"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /words/search [get]
func (h *WordHandler) Search(c *gin.Context) {
	words, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", words)
}

// Export godoc
// @Summary Export words
// @Tags Words
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorEnvelope
// @Router /words/export [get]
func (h *WordHandler) Export(c *gin.Context) {
	file, err := h.exporter.ExportWords(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
