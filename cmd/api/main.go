package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/scheduler"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/handlers"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/repositories"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/cmd/api/docs"
)

// @title Birdfeeder Analytics API
// @version 1.0
// @description Daily KPI windows, period comparison and inventory urgency
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()

	// Init logger
	utils.InitLogger(cfg.IsProduction())
	log.Info().Str("env", cfg.Env).Str("store", cfg.KPIStore).Msg("🚀 Starting analytics-api")

	ctx := context.Background()

	// Init KPI store
	var (
		db      *database.DB
		kpiRepo repositories.KPIRepo
	)
	switch cfg.KPIStore {
	case "postgres":
		db = database.NewDB(cfg.DatabaseURL)
		kpiRepo = repositories.NewKPIRepo(db.GORM)
	case "sqlite":
		var err error
		db, err = database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to open sqlite store")
		}
		kpiRepo, err = repositories.NewSQLiteKPIRepo(ctx, db.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to prepare sqlite store")
		}
	default:
		log.Fatal().Str("store", cfg.KPIStore).Msg("❌ Unknown KPI_STORE (use postgres or sqlite)")
	}
	defer db.Close()

	// Init forecast source
	var forecastSource services.ForecastSource
	if cfg.WebhookURL != "" {
		forecastSource = repositories.NewWebhookForecastSource(cfg.WebhookURL, cfg.WebhookKey, cfg.WebhookValue, cfg.ForecastTimeout)
	} else {
		log.Warn().Msg("⚠️  WEBHOOK_URL not set, inventory forecasts disabled")
	}

	// Init LLM service (optional)
	provider, err := llm.NewProvider(llm.ProviderConfig{
		Type:      llm.ProviderType(cfg.LLMProvider),
		OpenAIKey: cfg.OpenAIKey,
		GroqKey:   cfg.GroqKey,
		Model:     cfg.LLMModel,
	})
	if err != nil {
		log.Warn().Err(err).Msg("⚠️  LLM provider unavailable, using deterministic insights")
	}
	llmService := llm.NewService(provider)
	log.Info().Str("provider", llmService.GetProviderName()).Msg("🤖 Insight provider")

	// Init services
	insightService := services.NewInsightService(llmService)
	dashboardService := services.NewDashboardService(kpiRepo, forecastSource, insightService)
	exportService := services.NewExportService(dashboardService, export.NewService())
	ingestService := services.NewIngestService(kpiRepo, dashboardService)

	// Warm the snapshot before serving
	dashboardService.Refresh(ctx)

	// Scheduled refresh
	sched := scheduler.NewScheduler()
	if cfg.RefreshSchedule != "" {
		err := sched.AddJob("refresh-snapshot", cfg.RefreshSchedule, func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			dashboardService.Refresh(refreshCtx)
		})
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.RefreshSchedule).Msg("❌ Invalid REFRESH_SCHEDULE")
		}
	}
	sched.Start()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(dashboardService, llmService.GetProviderName())
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, exportService)
	ingestHandler := handlers.NewIngestHandler(ingestService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Birdfeeder Analytics API",
	})

	// Middleware
	app.Use(cors.New())

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Dashboard routes
	api := app.Group("/api")
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/dashboard/presets", dashboardHandler.GetPresets)
	api.Get("/dashboard/export", dashboardHandler.ExportDashboard)
	api.Get("/inventory", dashboardHandler.GetInventory)
	api.Post("/refresh", dashboardHandler.Refresh)
	api.Post("/kpis", ingestHandler.ImportKPIs)

	// Start server
	go func() {
		log.Info().Str("port", cfg.Port).Msg("✅ analytics-api running")
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("❌ Server stopped")
		}
	}()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("🛑 Shutting down analytics-api...")
	sched.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("👋 Goodbye!")
}
