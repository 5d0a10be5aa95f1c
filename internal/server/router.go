package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shauryacodes/nas-backend/internal/http/handlers"
	"github.com/shauryacodes/nas-backend/internal/http/middleware"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

type RouterConfig struct {
	Logger *logger.Logger

	HealthHandler       *handlers.HealthHandler
	DiscoveryHandler    *handlers.DiscoveryHandler
	ChatHandler         *handlers.ChatHandler
	NasAIHandler        *handlers.NasAIHandler
	OptimizationHandler *handlers.OptimizationHandler
	ExternalAIHandler   *handlers.ExternalAIHandler
	ExperimentHandler   *handlers.ExperimentHandler
	ArchitectureHandler *handlers.ArchitectureHandler
	StatsHandler        *handlers.StatsHandler
	ProfileHandler      *handlers.ProfileHandler
}

func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Logger))

	// Wrong verb on a known path must come back as 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("", cfg.DiscoveryHandler.Capabilities)

		api.POST("/chat", cfg.ChatHandler.Chat)
		api.GET("/chat/history", cfg.ChatHandler.History)
		// Alias kept for the deployed front end.
		api.POST("/shaurya-ai-enhanced", cfg.ChatHandler.Chat)

		api.POST("/nas-ai", cfg.NasAIHandler.Handle)

		api.POST("/optimization", cfg.OptimizationHandler.Start)
		api.GET("/optimization", cfg.OptimizationHandler.Status)
		api.PUT("/optimization", cfg.OptimizationHandler.Update)
		api.DELETE("/optimization", cfg.OptimizationHandler.Stop)

		api.POST("/external-ai", cfg.ExternalAIHandler.Complete)

		api.GET("/stats", cfg.StatsHandler.Global)

		api.POST("/experiments", cfg.ExperimentHandler.Create)
		api.GET("/experiments", cfg.ExperimentHandler.List)
		api.GET("/experiments/:id", cfg.ExperimentHandler.Get)
		api.PUT("/experiments/:id", cfg.ExperimentHandler.Update)
		api.DELETE("/experiments/:id", cfg.ExperimentHandler.Delete)
		api.POST("/experiments/:id/progress", cfg.ExperimentHandler.RecordProgress)
		api.GET("/experiments/:id/progress", cfg.ExperimentHandler.ListProgress)

		api.PUT("/profile", cfg.ProfileHandler.Upsert)
		api.GET("/profile/:id", cfg.ProfileHandler.Get)
		api.PUT("/profile/:id/stats", cfg.ProfileHandler.UpdateStats)

		api.POST("/architectures", cfg.ArchitectureHandler.Create)
		api.GET("/architectures", cfg.ArchitectureHandler.List)
		api.GET("/architectures/top", cfg.ArchitectureHandler.Top)
		api.GET("/architectures/:id", cfg.ArchitectureHandler.Get)
	}

	return router
}
