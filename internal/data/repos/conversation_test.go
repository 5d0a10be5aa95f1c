package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/shauryacodes/nas-backend/internal/data/repos/testutil"
	types "github.com/shauryacodes/nas-backend/internal/domain"
)

func TestConversationRepoSessionOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewConversationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	session := uuid.NewString()
	testutil.SeedConversation(t, ctx, tx, session, types.MessageRoleUser, "how do I reduce latency?")
	testutil.SeedConversation(t, ctx, tx, session, types.MessageRoleAI, "prune the dense layers")
	testutil.SeedConversation(t, ctx, tx, "other-session", types.MessageRoleUser, "unrelated")

	rows, err := repo.ListBySession(ctx, tx, session)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListBySession: expected 2 rows, got %d", len(rows))
	}
	if rows[0].MessageRole != types.MessageRoleUser || rows[1].MessageRole != types.MessageRoleAI {
		t.Fatalf("ListBySession: wrong order: %+v", rows)
	}
}

func TestProgressRepoIterationOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProgressRepo(db, testutil.Logger(t))
	ctx := context.Background()

	exp := testutil.SeedExperiment(t, ctx, tx, "progress test")
	for _, it := range []int{3, 1, 2} {
		if _, err := repo.Record(ctx, tx, &types.SearchProgress{
			ID:           uuid.New(),
			ExperimentID: exp.ID,
			Iteration:    it,
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	rows, err := repo.ListByExperiment(ctx, tx, exp.ID)
	if err != nil {
		t.Fatalf("ListByExperiment: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByExperiment: expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Iteration != i+1 {
			t.Fatalf("ListByExperiment: iteration order wrong at %d: %+v", i, row)
		}
	}
}
