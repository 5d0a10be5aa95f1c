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

type ProfileService interface {
	Upsert(ctx context.Context, profile *types.UserProfile) (*types.UserProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*types.UserProfile, error)
	UpdateStats(ctx context.Context, id uuid.UUID, totalExperiments, totalArchitectures int, bestAccuracy float64) error
}

type profileService struct {
	db       *gorm.DB
	log      *logger.Logger
	profiles repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, baseLog *logger.Logger, profiles repos.ProfileRepo) ProfileService {
	return &profileService{
		db:       db,
		log:      baseLog.With("service", "ProfileService"),
		profiles: profiles,
	}
}

func (s *profileService) Upsert(ctx context.Context, profile *types.UserProfile) (*types.UserProfile, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	if profile.ID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "id_required", errors.New("profile id is required"))
	}
	if profile.Email == "" {
		return nil, apierr.New(http.StatusBadRequest, "email_required", errors.New("profile email is required"))
	}
	out, err := s.profiles.Upsert(ctx, nil, profile)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*types.UserProfile, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	out, err := s.profiles.GetByID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *profileService) UpdateStats(ctx context.Context, id uuid.UUID, totalExperiments, totalArchitectures int, bestAccuracy float64) error {
	if s.db == nil {
		return ErrStoreNotConfigured
	}
	if err := s.profiles.UpdateStats(ctx, nil, id, totalExperiments, totalArchitectures, bestAccuracy); err != nil {
		return storeErr(err)
	}
	return nil
}
