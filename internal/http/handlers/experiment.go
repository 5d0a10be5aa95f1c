package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/services"
)

type ExperimentHandler struct {
	searchService services.SearchService
}

func NewExperimentHandler(searchService services.SearchService) *ExperimentHandler {
	return &ExperimentHandler{searchService: searchService}
}

// POST /api/experiments
func (h *ExperimentHandler) Create(c *gin.Context) {
	var exp types.SearchExperiment
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.searchService.CreateExperiment(c.Request.Context(), &exp)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"experiment": created})
}

// GET /api/experiments
func (h *ExperimentHandler) List(c *gin.Context) {
	experiments, err := h.searchService.ListExperiments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"experiments": experiments})
}

// GET /api/experiments/:id
func (h *ExperimentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	experiment, err := h.searchService.GetExperiment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"experiment": experiment})
}

// PUT /api/experiments/:id
func (h *ExperimentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	experiment, err := h.searchService.UpdateExperiment(c.Request.Context(), id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"experiment": experiment})
}

// DELETE /api/experiments/:id
func (h *ExperimentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	if err := h.searchService.DeleteExperiment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /api/experiments/:id/progress
func (h *ExperimentHandler) RecordProgress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	var row types.SearchProgress
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	row.ExperimentID = id
	created, err := h.searchService.RecordProgress(c.Request.Context(), &row)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": created})
}

// GET /api/experiments/:id/progress
func (h *ExperimentHandler) ListProgress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	rows, err := h.searchService.ListProgress(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": rows})
}
