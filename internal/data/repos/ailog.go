package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type AiCallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.AiCallLog) ([]*types.AiCallLog, error)
}

type aiCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAiCallLogRepo(db *gorm.DB, baseLog *logger.Logger) AiCallLogRepo {
	return &aiCallLogRepo{db: db, log: baseLog.With("repo", "AiCallLogRepo")}
}

func (r *aiCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AiCallLog) ([]*types.AiCallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.AiCallLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
