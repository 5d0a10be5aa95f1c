package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/nasai"
)

type OptimizationHandler struct {
	generator *nasai.Generator
}

func NewOptimizationHandler(generator *nasai.Generator) *OptimizationHandler {
	return &OptimizationHandler{generator: generator}
}

type optimizationStartRequest struct {
	Algorithm   string `json:"algorithm"`
	Parallelism int    `json:"parallelism"`
}

// POST /api/optimization
func (h *OptimizationHandler) Start(c *gin.Context) {
	var req optimizationStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if req.Algorithm == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "algorithm_required"})
		return
	}
	session, err := h.generator.StartOptimization(strings.ToLower(req.Algorithm), req.Parallelism)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_algorithm", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GET /api/optimization?searchId=...
func (h *OptimizationHandler) Status(c *gin.Context) {
	searchID := strings.TrimSpace(c.Query("searchId"))
	if searchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchId_required"})
		return
	}
	c.JSON(http.StatusOK, h.generator.Status(searchID))
}

type optimizationUpdateRequest struct {
	SearchID string `json:"searchId"`
}

// PUT /api/optimization
func (h *OptimizationHandler) Update(c *gin.Context) {
	var req optimizationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchId_required"})
		return
	}
	c.JSON(http.StatusOK, h.generator.Update(req.SearchID))
}

// DELETE /api/optimization?searchId=...
func (h *OptimizationHandler) Stop(c *gin.Context) {
	searchID := strings.TrimSpace(c.Query("searchId"))
	if searchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchId_required"})
		return
	}
	c.JSON(http.StatusOK, h.generator.Stop(searchID))
}
