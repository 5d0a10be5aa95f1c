package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GET /api/stats
func (h *StatsHandler) Global(c *gin.Context) {
	stats, err := h.statsService.Global(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, stats)
}
