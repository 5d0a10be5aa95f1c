package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/data/repos"
	types "github.com/shauryacodes/nas-backend/internal/domain"
	"github.com/shauryacodes/nas-backend/internal/platform/apierr"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type SearchService interface {
	CreateExperiment(ctx context.Context, exp *types.SearchExperiment) (*types.SearchExperiment, error)
	ListExperiments(ctx context.Context) ([]*types.SearchExperiment, error)
	GetExperiment(ctx context.Context, id uuid.UUID) (*types.SearchExperiment, error)
	UpdateExperiment(ctx context.Context, id uuid.UUID, updates map[string]any) (*types.SearchExperiment, error)
	DeleteExperiment(ctx context.Context, id uuid.UUID) error

	CreateArchitecture(ctx context.Context, arch *types.NeuralArchitecture) (*types.NeuralArchitecture, error)
	ListArchitectures(ctx context.Context, experimentID *uuid.UUID) ([]*types.NeuralArchitecture, error)
	TopArchitectures(ctx context.Context, limit int) ([]*types.NeuralArchitecture, error)
	GetArchitecture(ctx context.Context, id uuid.UUID) (*types.NeuralArchitecture, error)

	RecordProgress(ctx context.Context, row *types.SearchProgress) (*types.SearchProgress, error)
	ListProgress(ctx context.Context, experimentID uuid.UUID) ([]*types.SearchProgress, error)
}

type searchService struct {
	db            *gorm.DB
	log           *logger.Logger
	experiments   repos.ExperimentRepo
	architectures repos.ArchitectureRepo
	progress      repos.ProgressRepo
}

func NewSearchService(
	db *gorm.DB,
	baseLog *logger.Logger,
	experiments repos.ExperimentRepo,
	architectures repos.ArchitectureRepo,
	progress repos.ProgressRepo,
) SearchService {
	return &searchService{
		db:            db,
		log:           baseLog.With("service", "SearchService"),
		experiments:   experiments,
		architectures: architectures,
		progress:      progress,
	}
}

func (s *searchService) configured() bool { return s.db != nil }

func (s *searchService) CreateExperiment(ctx context.Context, exp *types.SearchExperiment) (*types.SearchExperiment, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if exp.Name == "" {
		return nil, apierr.New(http.StatusBadRequest, "name_required", errors.New("experiment name is required"))
	}
	created, err := s.experiments.Create(ctx, nil, exp)
	if err != nil {
		return nil, storeErr(err)
	}
	return created, nil
}

func (s *searchService) ListExperiments(ctx context.Context) ([]*types.SearchExperiment, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.experiments.List(ctx, nil)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) GetExperiment(ctx context.Context, id uuid.UUID) (*types.SearchExperiment, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.experiments.GetByID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) UpdateExperiment(ctx context.Context, id uuid.UUID, updates map[string]any) (*types.SearchExperiment, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if len(updates) == 0 {
		return nil, apierr.New(http.StatusBadRequest, "no_updates", errors.New("no fields to update"))
	}
	out, err := s.experiments.Update(ctx, nil, id, updates)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) DeleteExperiment(ctx context.Context, id uuid.UUID) error {
	if !s.configured() {
		return ErrStoreNotConfigured
	}
	if err := s.experiments.Delete(ctx, nil, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *searchService) CreateArchitecture(ctx context.Context, arch *types.NeuralArchitecture) (*types.NeuralArchitecture, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if arch.ExperimentID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "experiment_id_required", errors.New("experiment_id is required"))
	}
	created, err := s.architectures.Create(ctx, nil, arch)
	if err != nil {
		return nil, storeErr(err)
	}
	return created, nil
}

func (s *searchService) ListArchitectures(ctx context.Context, experimentID *uuid.UUID) ([]*types.NeuralArchitecture, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.architectures.List(ctx, nil, experimentID)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) TopArchitectures(ctx context.Context, limit int) ([]*types.NeuralArchitecture, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.architectures.Top(ctx, nil, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) GetArchitecture(ctx context.Context, id uuid.UUID) (*types.NeuralArchitecture, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.architectures.GetByID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) RecordProgress(ctx context.Context, row *types.SearchProgress) (*types.SearchProgress, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if row.ExperimentID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "experiment_id_required", errors.New("experiment_id is required"))
	}
	out, err := s.progress.Record(ctx, nil, row)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *searchService) ListProgress(ctx context.Context, experimentID uuid.UUID) ([]*types.SearchProgress, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.progress.ListByExperiment(ctx, nil, experimentID)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
