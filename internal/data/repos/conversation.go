package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type ConversationRepo interface {
	Save(ctx context.Context, tx *gorm.DB, rows []*types.AiConversation) ([]*types.AiConversation, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID string) ([]*types.AiConversation, error)
}

type conversationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
	return &conversationRepo{db: db, log: baseLog.With("repo", "ConversationRepo")}
}

func (r *conversationRepo) Save(ctx context.Context, tx *gorm.DB, rows []*types.AiConversation) ([]*types.AiConversation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.AiConversation{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *conversationRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID string) ([]*types.AiConversation, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AiConversation
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
