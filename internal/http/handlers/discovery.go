package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct{}

func NewDiscoveryHandler() *DiscoveryHandler { return &DiscoveryHandler{} }

// GET /api returns the capability document the front end uses to probe
// what this deployment supports.
func (h *DiscoveryHandler) Capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "nas-dashboard-backend",
		"version": "1.0.0",
		"endpoints": []gin.H{
			{"method": "POST", "path": "/api/chat", "description": "NAS assistant chat"},
			{"method": "POST", "path": "/api/shaurya-ai-enhanced", "description": "NAS assistant chat (enhanced alias)"},
			{"method": "POST", "path": "/api/nas-ai", "description": "evaluate | optimize | suggest | compare"},
			{"method": "POST", "path": "/api/optimization", "description": "start an optimization session"},
			{"method": "GET", "path": "/api/optimization", "description": "poll session status by searchId"},
			{"method": "PUT", "path": "/api/optimization", "description": "update session parameters"},
			{"method": "DELETE", "path": "/api/optimization", "description": "stop a session"},
			{"method": "POST", "path": "/api/external-ai", "description": "proxy to an external AI service"},
			{"method": "GET", "path": "/api/stats", "description": "global dashboard counters"},
			{"method": "GET", "path": "/api/experiments", "description": "list search experiments"},
			{"method": "GET", "path": "/api/architectures/top", "description": "architecture leaderboard"},
		},
		"algorithms": []string{"evolutionary", "bayesian", "gradient", "reinforcement", "random"},
		"services":   []string{"openai", "anthropic", "cohere", "huggingface", "replicate"},
	})
}
