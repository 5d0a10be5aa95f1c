package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/data/repos"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type StatsService interface {
	Global(ctx context.Context) (*repos.GlobalStats, error)
}

type statsService struct {
	db    *gorm.DB
	log   *logger.Logger
	stats repos.StatsRepo
}

func NewStatsService(db *gorm.DB, baseLog *logger.Logger, stats repos.StatsRepo) StatsService {
	return &statsService{
		db:    db,
		log:   baseLog.With("service", "StatsService"),
		stats: stats,
	}
}

func (s *statsService) Global(ctx context.Context) (*repos.GlobalStats, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.stats.GlobalStats(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
