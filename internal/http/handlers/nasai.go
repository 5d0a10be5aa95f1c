package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/nasai"
)

type NasAIHandler struct {
	generator *nasai.Generator
}

func NewNasAIHandler(generator *nasai.Generator) *NasAIHandler {
	return &NasAIHandler{generator: generator}
}

type nasAIRequest struct {
	Operation     string                  `json:"operation"`
	Layers        []nasai.LayerSpec       `json:"layers"`
	Dataset       string                  `json:"dataset"`
	Algorithm     string                  `json:"algorithm"`
	Parallelism   int                     `json:"parallelism"`
	Architectures []nasai.ComparisonInput `json:"architectures"`
}

// POST /api/nas-ai
// body: { "operation": "evaluate" | "optimize" | "suggest" | "compare", ... }
func (h *NasAIHandler) Handle(c *gin.Context) {
	var req nasAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	switch strings.ToLower(req.Operation) {
	case "evaluate":
		eval := nasai.EvaluateArchitecture(req.Layers, req.Dataset)
		c.JSON(http.StatusOK, gin.H{"operation": "evaluate", "evaluation": eval})
	case "optimize":
		session, err := h.generator.StartOptimization(req.Algorithm, req.Parallelism)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_algorithm", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"operation": "optimize", "session": session})
	case "suggest":
		suggestions := nasai.SuggestImprovements(req.Layers, req.Dataset)
		c.JSON(http.StatusOK, gin.H{"operation": "suggest", "suggestions": suggestions})
	case "compare":
		if len(req.Architectures) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "architectures_required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"operation": "compare", "comparison": nasai.CompareArchitectures(req.Architectures)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_operation", "detail": req.Operation})
	}
}
