package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/data/repos"
	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/nasai"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

const chatModelName = "nas-ai-v1"

type ChatResult struct {
	Topic          nasai.Topic `json:"topic"`
	Content        string      `json:"content"`
	Model          string      `json:"model"`
	TokensUsed     int         `json:"tokens_used"`
	ResponseTimeMS int         `json:"response_time_ms"`
}

type ChatService interface {
	// Respond classifies the prompt, produces the canned reply, and when the
	// store is configured persists both sides of the exchange.
	Respond(ctx context.Context, sessionID string, experimentID *uuid.UUID, prompt string) (*ChatResult, error)
	History(ctx context.Context, sessionID string) ([]*types.AiConversation, error)
}

type chatService struct {
	db            *gorm.DB
	log           *logger.Logger
	conversations repos.ConversationRepo
	callLogs      repos.AiCallLogRepo
}

func NewChatService(
	db *gorm.DB,
	baseLog *logger.Logger,
	conversations repos.ConversationRepo,
	callLogs repos.AiCallLogRepo,
) ChatService {
	return &chatService{
		db:            db,
		log:           baseLog.With("service", "ChatService"),
		conversations: conversations,
		callLogs:      callLogs,
	}
}

func (s *chatService) Respond(ctx context.Context, sessionID string, experimentID *uuid.UUID, prompt string) (*ChatResult, error) {
	start := time.Now()
	topic, content := nasai.RespondToPrompt(prompt)
	elapsed := int(time.Since(start).Milliseconds())

	result := &ChatResult{
		Topic:          topic,
		Content:        content,
		Model:          chatModelName,
		TokensUsed:     approxTokens(prompt) + approxTokens(content),
		ResponseTimeMS: elapsed,
	}

	// Persistence is best-effort when the store is up and skipped entirely
	// when it is not; chat keeps working either way.
	if s.db == nil {
		return result, nil
	}

	rows := []*types.AiConversation{
		{
			ExperimentID:   experimentID,
			SessionID:      sessionID,
			MessageRole:    types.MessageRoleUser,
			MessageContent: prompt,
		},
		{
			ExperimentID:   experimentID,
			SessionID:      sessionID,
			MessageRole:    types.MessageRoleAI,
			MessageContent: content,
			ModelName:      chatModelName,
			ResponseTimeMS: result.ResponseTimeMS,
			TokensUsed:     result.TokensUsed,
		},
	}
	if _, err := s.conversations.Save(ctx, nil, rows); err != nil {
		s.log.Warn("Failed to persist conversation", "session_id", sessionID, "error", err)
	}
	if _, err := s.callLogs.Create(ctx, nil, []*types.AiCallLog{{
		Provider:       "nas-ai",
		Model:          chatModelName,
		Operation:      string(topic),
		ResponseTimeMS: result.ResponseTimeMS,
		TokensUsed:     result.TokensUsed,
	}}); err != nil {
		s.log.Warn("Failed to persist ai call log", "error", err)
	}

	return result, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]*types.AiConversation, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.conversations.ListBySession(ctx, nil, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// approxTokens is the same whitespace-based estimate the original dashboard
// reported; there is no tokenizer behind it.
func approxTokens(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}
