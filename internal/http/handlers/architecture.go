package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/services"
)

type ArchitectureHandler struct {
	searchService services.SearchService
}

func NewArchitectureHandler(searchService services.SearchService) *ArchitectureHandler {
	return &ArchitectureHandler{searchService: searchService}
}

// POST /api/architectures
func (h *ArchitectureHandler) Create(c *gin.Context) {
	var arch types.NeuralArchitecture
	if err := c.ShouldBindJSON(&arch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	created, err := h.searchService.CreateArchitecture(c.Request.Context(), &arch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"architecture": created})
}

// GET /api/architectures?experiment_id=...
func (h *ArchitectureHandler) List(c *gin.Context) {
	var experimentID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("experiment_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_experiment_id"})
			return
		}
		experimentID = &id
	}
	architectures, err := h.searchService.ListArchitectures(c.Request.Context(), experimentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"architectures": architectures})
}

// GET /api/architectures/top?limit=10
func (h *ArchitectureHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	architectures, err := h.searchService.TopArchitectures(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"architectures": architectures})
}

// GET /api/architectures/:id
func (h *ArchitectureHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	arch, err := h.searchService.GetArchitecture(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"architecture": arch})
}
