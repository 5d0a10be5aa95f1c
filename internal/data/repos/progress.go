package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type ProgressRepo interface {
	Record(ctx context.Context, tx *gorm.DB, row *types.SearchProgress) (*types.SearchProgress, error)
	ListByExperiment(ctx context.Context, tx *gorm.DB, experimentID uuid.UUID) ([]*types.SearchProgress, error)
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) Record(ctx context.Context, tx *gorm.DB, row *types.SearchProgress) (*types.SearchProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *progressRepo) ListByExperiment(ctx context.Context, tx *gorm.DB, experimentID uuid.UUID) ([]*types.SearchProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SearchProgress
	if err := transaction.WithContext(ctx).
		Where("experiment_id = ?", experimentID).
		Order("iteration ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
