package repos

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type GlobalStats struct {
	TotalExperiments   int64 `json:"total_experiments"`
	TotalArchitectures int64 `json:"total_architectures"`
	TotalConversations int64 `json:"total_conversations"`
}

type StatsRepo interface {
	GlobalStats(ctx context.Context) (*GlobalStats, error)
}

type statsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatsRepo(db *gorm.DB, baseLog *logger.Logger) StatsRepo {
	return &statsRepo{db: db, log: baseLog.With("repo", "StatsRepo")}
}

// GlobalStats issues the three COUNT queries concurrently. The counts are
// independent, so ordering between them does not matter.
func (r *statsRepo) GlobalStats(ctx context.Context) (*GlobalStats, error) {
	var stats GlobalStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&types.SearchExperiment{}).
			Count(&stats.TotalExperiments).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&types.NeuralArchitecture{}).
			Count(&stats.TotalArchitectures).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).
			Model(&types.AiConversation{}).
			Count(&stats.TotalConversations).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
