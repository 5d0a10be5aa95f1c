package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
)

func SeedExperiment(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.SearchExperiment {
	tb.Helper()
	e := &types.SearchExperiment{
		ID:             uuid.New(),
		Name:           name,
		Strategy:       types.StrategyEvolutionary,
		Dataset:        types.DatasetCIFAR10,
		SearchBudget:   100,
		PopulationSize: 20,
		MaxEpochs:      50,
		Status:         types.StatusPending,
		CreatedBy:      "demo-user",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed experiment: %v", err)
	}
	return e
}

func SeedArchitecture(tb testing.TB, ctx context.Context, tx *gorm.DB, experimentID uuid.UUID, score float64) *types.NeuralArchitecture {
	tb.Helper()
	a := &types.NeuralArchitecture{
		ID:               uuid.New(),
		ExperimentID:     experimentID,
		Name:             "arch",
		ArchitectureJSON: datatypes.JSON([]byte(`{"layers":[]}`)),
		ParentIDs:        datatypes.JSON([]byte("[]")),
		OverallScore:     score,
		Status:           types.StatusPending,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed architecture: %v", err)
	}
	return a
}

func SeedConversation(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID, role, content string) *types.AiConversation {
	tb.Helper()
	c := &types.AiConversation{
		ID:             uuid.New(),
		SessionID:      sessionID,
		MessageRole:    role,
		MessageContent: content,
		ModelName:      "nas-ai-v1",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed conversation: %v", err)
	}
	return c
}
