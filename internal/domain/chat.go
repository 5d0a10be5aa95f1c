package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageRoleUser = "user"
	MessageRoleAI   = "ai"
)

type AiConversation struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExperimentID *uuid.UUID `gorm:"type:uuid;index;column:experiment_id" json:"experiment_id,omitempty"`
	SessionID    string     `gorm:"not null;index;column:session_id" json:"session_id"`

	MessageRole    string `gorm:"not null;column:message_role" json:"message_role"`
	MessageContent string `gorm:"not null;column:message_content" json:"message_content"`

	ModelName      string `gorm:"column:model_name" json:"model_name"`
	ResponseTimeMS int    `gorm:"not null;default:0;column:response_time_ms" json:"response_time_ms"`
	TokensUsed     int    `gorm:"not null;default:0;column:tokens_used" json:"tokens_used"`

	UserID string `gorm:"column:user_id" json:"user_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (AiConversation) TableName() string { return "ai_conversation" }

// AiCallLog is an append-only audit row per mock or proxied AI invocation.
type AiCallLog struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Provider string    `gorm:"not null;column:provider" json:"provider"`
	Model    string    `gorm:"column:model" json:"model"`

	Operation      string `gorm:"not null;column:operation" json:"operation"`
	ResponseTimeMS int    `gorm:"not null;default:0;column:response_time_ms" json:"response_time_ms"`
	TokensUsed     int    `gorm:"not null;default:0;column:tokens_used" json:"tokens_used"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (AiCallLog) TableName() string { return "ai_call_log" }
