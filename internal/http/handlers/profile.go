package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// PUT /api/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var profile types.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	saved, err := h.profileService.Upsert(c.Request.Context(), &profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": saved})
}

// GET /api/profile/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": profile})
}

type profileStatsRequest struct {
	TotalExperiments   int     `json:"total_experiments"`
	TotalArchitectures int     `json:"total_architectures"`
	BestAccuracy       float64 `json:"best_accuracy"`
}

// PUT /api/profile/:id/stats
func (h *ProfileHandler) UpdateStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}
	var req profileStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if err := h.profileService.UpdateStats(c.Request.Context(), id, req.TotalExperiments, req.TotalArchitectures, req.BestAccuracy); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
