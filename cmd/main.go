package main

import (
	stdlog "log"

	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/clients/ai"
	"github.com/shauryacodes/nas-backend/internal/data/db"
	"github.com/shauryacodes/nas-backend/internal/data/repos"
	"github.com/shauryacodes/nas-backend/internal/http/handlers"
	"github.com/shauryacodes/nas-backend/internal/nasai"
	"github.com/shauryacodes/nas-backend/internal/platform/envutil"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
	"github.com/shauryacodes/nas-backend/internal/server"
	"github.com/shauryacodes/nas-backend/internal/services"
)

func main() {
	logg, err := logger.New(envutil.String("LOG_MODE", "dev"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	// Postgres is optional: without it the persistence endpoints answer 503
	// while chat, evaluation, and optimization stay fully functional.
	var gormDB *gorm.DB
	postgresService, err := db.NewPostgresService(logg)
	if err != nil {
		logg.Warn("Postgres unavailable, running without persistence", "error", err)
	} else if err := postgresService.AutoMigrateAll(); err != nil {
		logg.Warn("Postgres migration failed, running without persistence", "error", err)
	} else {
		gormDB = postgresService.DB()
	}

	experimentRepo := repos.NewExperimentRepo(gormDB, logg)
	architectureRepo := repos.NewArchitectureRepo(gormDB, logg)
	progressRepo := repos.NewProgressRepo(gormDB, logg)
	conversationRepo := repos.NewConversationRepo(gormDB, logg)
	callLogRepo := repos.NewAiCallLogRepo(gormDB, logg)
	profileRepo := repos.NewProfileRepo(gormDB, logg)
	statsRepo := repos.NewStatsRepo(gormDB, logg)

	searchService := services.NewSearchService(gormDB, logg, experimentRepo, architectureRepo, progressRepo)
	chatService := services.NewChatService(gormDB, logg, conversationRepo, callLogRepo)
	statsService := services.NewStatsService(gormDB, logg, statsRepo)
	profileService := services.NewProfileService(gormDB, logg, profileRepo)

	generator := nasai.NewGenerator()
	registry := ai.NewRegistry(logg)

	router := server.NewRouter(&server.RouterConfig{
		Logger:              logg,
		HealthHandler:       handlers.NewHealthHandler(),
		DiscoveryHandler:    handlers.NewDiscoveryHandler(),
		ChatHandler:         handlers.NewChatHandler(chatService),
		NasAIHandler:        handlers.NewNasAIHandler(generator),
		OptimizationHandler: handlers.NewOptimizationHandler(generator),
		ExternalAIHandler:   handlers.NewExternalAIHandler(registry),
		ExperimentHandler:   handlers.NewExperimentHandler(searchService),
		ArchitectureHandler: handlers.NewArchitectureHandler(searchService),
		StatsHandler:        handlers.NewStatsHandler(statsService),
		ProfileHandler:      handlers.NewProfileHandler(profileService),
	})

	port := envutil.String("PORT", "8080")
	logg.Info("Starting HTTP server", "port", port)
	if err := router.Run(":" + port); err != nil {
		logg.Fatal("HTTP server exited", "error", err)
	}
}
