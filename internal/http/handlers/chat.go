package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shauryacodes/nas-backend/internal/http/response"
	"github.com/shauryacodes/nas-backend/internal/services"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages     []ChatMessage `json:"messages"`
	SessionID    string        `json:"session_id"`
	ExperimentID *uuid.UUID    `json:"experiment_id"`
}

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /api/chat
// POST /api/shaurya-ai-enhanced
// body: { "messages": [{"role":"user","content":"..."}], "session_id": "..." }
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages_required"})
		return
	}
	last := req.Messages[len(req.Messages)-1]
	if strings.ToLower(last.Role) != "user" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_message_must_be_user"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.chatService.Respond(c.Request.Context(), sessionID, req.ExperimentID, last.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// One reply serialized under three keys: different front-end widgets
	// read different shapes.
	c.JSON(http.StatusOK, gin.H{
		"content": result.Content,
		"text":    result.Content,
		"choices": []gin.H{
			{"message": gin.H{"role": "assistant", "content": result.Content}},
		},
		"topic":            result.Topic,
		"model":            result.Model,
		"tokens_used":      result.TokensUsed,
		"response_time_ms": result.ResponseTimeMS,
		"session_id":       sessionID,
	})
}

// GET /api/chat/history?session_id=...
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id_required"})
		return
	}
	rows, err := h.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": rows})
}
