package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/noahsafar/sentiscore-sub000/internal/config"
	"github.com/noahsafar/sentiscore-sub000/internal/handlers"
	"github.com/noahsafar/sentiscore-sub000/internal/logger"
	"github.com/noahsafar/sentiscore-sub000/internal/middleware"
	"github.com/noahsafar/sentiscore-sub000/internal/repository"
	"github.com/noahsafar/sentiscore-sub000/internal/service"
	"github.com/noahsafar/sentiscore-sub000/internal/textscore"
	"github.com/noahsafar/sentiscore-sub000/pkg/summarizer"
	"github.com/noahsafar/sentiscore-sub000/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting sentiscore API server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage", cfg.Storage.Backend),
	)

	// Initialize storage backend
	var (
		entryRepo repository.EntryRepository
		verifier  middleware.TokenVerifier
	)
	switch cfg.Storage.Backend {
	case config.StorageSupabase:
		supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		entryRepo = repository.NewSupabaseEntryRepository(supabaseClient)
		verifier = supabaseClient
	default:
		entryRepo = repository.NewMemoryEntryRepository()
	}

	// Optional generative summarizer for insight phrasing
	var insightSummarizer service.Summarizer
	if cfg.OpenAI.APIKey != "" {
		insightSummarizer = summarizer.NewOpenAISummarizer(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		log.Info("insight summarizer enabled", logger.String("model", cfg.OpenAI.Model))
	}

	// Initialize services
	scorer := textscore.NewScorer()
	analysisService := service.NewAnalysisService(scorer, entryRepo)
	intelligenceService := service.NewIntelligenceService(entryRepo, insightSummarizer)

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(analysisService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	analyticsHandler := handlers.NewAnalyticsHandler(intelligenceService)
	insightsHandler := handlers.NewInsightsHandler(intelligenceService)

	// Set Gin mode based on environment
	devMode := cfg.Server.Env != "production"
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Stateless scoring needs no auth
		v1.POST("/analysis/text", analysisHandler.AnalyzeText)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(verifier, devMode))
		{
			// Entry routes
			protected.POST("/entries", entryHandler.CreateEntry)
			protected.GET("/entries", entryHandler.ListEntries)

			// Analytics routes
			protected.GET("/analytics/trends", analyticsHandler.GetTrends)
			protected.GET("/analytics/stats", analyticsHandler.GetStats)

			// Insights routes
			protected.GET("/insights", insightsHandler.GetInsights)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
