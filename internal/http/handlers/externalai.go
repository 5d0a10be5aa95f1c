package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/clients/ai"
)

type ExternalAIHandler struct {
	registry *ai.Registry
}

func NewExternalAIHandler(registry *ai.Registry) *ExternalAIHandler {
	return &ExternalAIHandler{registry: registry}
}

type externalAIRequest struct {
	Service string `json:"service"`
	Prompt  string `json:"prompt"`
}

// POST /api/external-ai
// body: { "service": "openai" | "anthropic" | "cohere" | "huggingface" | "replicate", "prompt": "..." }
func (h *ExternalAIHandler) Complete(c *gin.Context) {
	var req externalAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	provider, err := h.registry.Resolve(req.Service)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_service", "detail": err.Error()})
		return
	}
	completion, err := provider.Complete(req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt_required", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, completion)
}
