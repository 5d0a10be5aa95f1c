package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

// DefaultCreatedBy is stamped on every experiment row regardless of what the
// caller sends. The dashboard has no per-user ownership yet.
const DefaultCreatedBy = "demo-user"

type ExperimentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exp *types.SearchExperiment) (*types.SearchExperiment, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.SearchExperiment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SearchExperiment, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.SearchExperiment, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type experimentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperimentRepo(db *gorm.DB, baseLog *logger.Logger) ExperimentRepo {
	return &experimentRepo{db: db, log: baseLog.With("repo", "ExperimentRepo")}
}

func (r *experimentRepo) Create(ctx context.Context, tx *gorm.DB, exp *types.SearchExperiment) (*types.SearchExperiment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	exp.CreatedBy = DefaultCreatedBy
	if err := transaction.WithContext(ctx).Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

func (r *experimentRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.SearchExperiment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SearchExperiment
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *experimentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SearchExperiment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.SearchExperiment
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *experimentRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.SearchExperiment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	delete(updates, "id")
	delete(updates, "created_by")
	updates["updated_at"] = gorm.Expr("now()")

	res := transaction.WithContext(ctx).
		Model(&types.SearchExperiment{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, transaction, id)
}

func (r *experimentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	// Cascade to architectures explicitly: FK constraints are disabled
	// during auto-migration, so gorm will not do it for us.
	if err := transaction.WithContext(ctx).
		Where("experiment_id = ?", id).
		Delete(&types.NeuralArchitecture{}).Error; err != nil {
		return err
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.SearchExperiment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
