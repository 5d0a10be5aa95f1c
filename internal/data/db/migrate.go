package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/shauryacodes/nas-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.UserProfile{},
		&types.SearchExperiment{},
		&types.NeuralArchitecture{},
		&types.SearchProgress{},
		&types.AiConversation{},
		&types.AiCallLog{},
	)
}

func EnsureSearchIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_search_experiment_status_created
		ON search_experiment (status, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_search_experiment_status_created: %w", err)
	}

	// Leaderboard and top-N queries sort by score.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_neural_architecture_score
		ON neural_architecture (overall_score DESC)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_neural_architecture_score: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_search_progress_experiment_iteration
		ON search_progress (experiment_id, iteration);
	`).Error; err != nil {
		return fmt.Errorf("create idx_search_progress_experiment_iteration: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ai_conversation_session_created
		ON ai_conversation (session_id, created_at);
	`).Error; err != nil {
		return fmt.Errorf("create idx_ai_conversation_session_created: %w", err)
	}

	return nil
}

// EnsureViews recreates the two derived read models the dashboard renders:
// a cross-experiment leaderboard and a per-experiment rollup.
func EnsureViews(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE OR REPLACE VIEW architecture_leaderboard AS
		SELECT
			a.id,
			a.name,
			a.experiment_id,
			e.name AS experiment_name,
			a.accuracy,
			a.latency_ms,
			a.total_parameters,
			a.overall_score,
			a.efficiency_ratio,
			a.pareto_rank,
			RANK() OVER (ORDER BY a.overall_score DESC) AS leaderboard_rank
		FROM neural_architecture a
		JOIN search_experiment e ON e.id = a.experiment_id
		WHERE a.deleted_at IS NULL AND e.deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create architecture_leaderboard view: %w", err)
	}

	if err := db.Exec(`
		CREATE OR REPLACE VIEW experiment_summary AS
		SELECT
			e.id,
			e.name,
			e.strategy,
			e.dataset,
			e.status,
			e.best_accuracy,
			e.created_at,
			COUNT(a.id) AS architecture_count,
			COALESCE(MAX(a.accuracy), 0) AS max_architecture_accuracy,
			COALESCE(AVG(a.overall_score), 0) AS avg_overall_score
		FROM search_experiment e
		LEFT JOIN neural_architecture a
			ON a.experiment_id = e.id AND a.deleted_at IS NULL
		WHERE e.deleted_at IS NULL
		GROUP BY e.id;
	`).Error; err != nil {
		return fmt.Errorf("create experiment_summary view: %w", err)
	}

	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureSearchIndexes(s.db); err != nil {
		s.log.Error("Search index migration failed", "error", err)
		return err
	}
	if err := EnsureViews(s.db); err != nil {
		s.log.Error("View migration failed", "error", err)
		return err
	}
	return nil
}
