package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/data/repos/testutil"
	types "github.com/shauryacodes/nas-backend/internal/domain"
)

func TestExperimentRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewExperimentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, &types.SearchExperiment{
		ID:             uuid.New(),
		Name:           "resnet search",
		Description:    "cifar10 baseline",
		Strategy:       types.StrategyBayesian,
		Dataset:        types.DatasetCIFAR10,
		SearchBudget:   200,
		PopulationSize: 30,
		MaxEpochs:      80,
		TargetAccuracy: 0.95,
		Status:         types.StatusPending,
		CreatedBy:      "someone-else",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedBy != DefaultCreatedBy {
		t.Fatalf("Create: created_by not forced, got %q", created.CreatedBy)
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "resnet search" || got.Strategy != types.StrategyBayesian ||
		got.SearchBudget != 200 || got.TargetAccuracy != 0.95 {
		t.Fatalf("GetByID: round trip mismatch: %+v", got)
	}

	listed, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) == 0 || listed[0].ID != created.ID {
		t.Fatalf("List: expected newest first, got %+v", listed)
	}
}

func TestExperimentRepoUpdate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewExperimentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	exp := testutil.SeedExperiment(t, ctx, tx, "update target")

	updated, err := repo.Update(ctx, tx, exp.ID, map[string]any{
		"status":        types.StatusTraining,
		"best_accuracy": 0.91,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != types.StatusTraining || updated.BestAccuracy != 0.91 {
		t.Fatalf("Update: fields not merged: %+v", updated)
	}

	_, err = repo.Update(ctx, tx, uuid.New(), map[string]any{"status": types.StatusFailed})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Update (missing): expected ErrRecordNotFound, got %v", err)
	}
}

func TestExperimentRepoDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewExperimentRepo(db, testutil.Logger(t))
	archRepo := NewArchitectureRepo(db, testutil.Logger(t))
	ctx := context.Background()

	exp := testutil.SeedExperiment(t, ctx, tx, "delete target")
	testutil.SeedArchitecture(t, ctx, tx, exp.ID, 0.5)

	if err := repo.Delete(ctx, tx, exp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	children, err := archRepo.List(ctx, tx, &exp.ID)
	if err != nil {
		t.Fatalf("List children: %v", err)
	}
	if len(children) != 0 {
		t.Fatalf("Delete: expected cascade, %d architectures remain", len(children))
	}
}
