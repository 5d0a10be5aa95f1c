package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type ArchitectureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, arch *types.NeuralArchitecture) (*types.NeuralArchitecture, error)
	List(ctx context.Context, tx *gorm.DB, experimentID *uuid.UUID) ([]*types.NeuralArchitecture, error)
	Top(ctx context.Context, tx *gorm.DB, limit int) ([]*types.NeuralArchitecture, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.NeuralArchitecture, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.NeuralArchitecture, error)
}

type architectureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArchitectureRepo(db *gorm.DB, baseLog *logger.Logger) ArchitectureRepo {
	return &architectureRepo{db: db, log: baseLog.With("repo", "ArchitectureRepo")}
}

func (r *architectureRepo) Create(ctx context.Context, tx *gorm.DB, arch *types.NeuralArchitecture) (*types.NeuralArchitecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(arch).Error; err != nil {
		return nil, err
	}
	return arch, nil
}

func (r *architectureRepo) List(ctx context.Context, tx *gorm.DB, experimentID *uuid.UUID) ([]*types.NeuralArchitecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Order("created_at DESC")
	if experimentID != nil {
		q = q.Where("experiment_id = ?", *experimentID)
	}
	var results []*types.NeuralArchitecture
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *architectureRepo) Top(ctx context.Context, tx *gorm.DB, limit int) ([]*types.NeuralArchitecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var results []*types.NeuralArchitecture
	if err := transaction.WithContext(ctx).
		Order("overall_score DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *architectureRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.NeuralArchitecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.NeuralArchitecture
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *architectureRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) (*types.NeuralArchitecture, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	delete(updates, "id")
	updates["updated_at"] = gorm.Expr("now()")

	res := transaction.WithContext(ctx).
		Model(&types.NeuralArchitecture{}).
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
