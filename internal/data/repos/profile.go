package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type ProfileRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, profile *types.UserProfile) (*types.UserProfile, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.UserProfile, error)
	UpdateStats(ctx context.Context, tx *gorm.DB, id uuid.UUID, totalExperiments, totalArchitectures int, bestAccuracy float64) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.UserProfile) (*types.UserProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "avatar_url", "preferences", "updated_at"}),
		}).
		Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.UserProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.UserProfile
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *profileRepo) UpdateStats(ctx context.Context, tx *gorm.DB, id uuid.UUID, totalExperiments, totalArchitectures int, bestAccuracy float64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.UserProfile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_experiments":   totalExperiments,
			"total_architectures": totalArchitectures,
			"best_accuracy":       bestAccuracy,
			"updated_at":          gorm.Expr("now()"),
		}).Error
}
