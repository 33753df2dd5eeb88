package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

func main() {
	var command string

	flag.StringVar(&command, "cmd", "up", "Migration command (up, down, version, force)")
	flag.Parse()

	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.IsProduction())

	// Each store has its own dialect
	migrationPath, databaseURL, err := target(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Cannot resolve migration target")
	}

	log.Info().Str("store", cfg.KPIStore).Str("path", migrationPath).Str("database", maskDatabaseURL(databaseURL)).Msg("🔄 Running migrations")

	// Create migrate instance
	m, err := migrate.New(migrationPath, databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create migrate instance")
	}
	defer m.Close()

	// Execute command
	switch command {
	case "up":
		log.Info().Msg("⬆️  Running UP migrations...")
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("❌ Migration UP failed")
		}
		log.Info().Msg("✅ Migrations UP completed!")

	case "down":
		log.Info().Msg("⬇️  Running DOWN migrations...")
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("❌ Migration DOWN failed")
		}
		log.Info().Msg("✅ Migrations DOWN completed!")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("❌ Failed to get version")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("📌 Current version")

	case "force":
		if len(flag.Args()) < 1 {
			log.Fatal().Msg("❌ Please provide version number for force command")
		}
		var forceVersion int
		if _, err := fmt.Sscanf(flag.Arg(0), "%d", &forceVersion); err != nil {
			log.Fatal().Str("arg", flag.Arg(0)).Msg("❌ Version must be a number")
		}
		if err := m.Force(forceVersion); err != nil {
			log.Fatal().Err(err).Msg("❌ Force failed")
		}
		log.Info().Int("version", forceVersion).Msg("✅ Forced version")

	default:
		log.Fatal().Str("cmd", command).Msg("❌ Unknown command (use: up, down, version, force)")
	}
}

// target returns the migration directory and database URL for the configured store
func target(cfg *config.Config) (string, string, error) {
	switch cfg.KPIStore {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return "", "", fmt.Errorf("DATABASE_URL is empty")
		}
		return "file://migrations/analytics", cfg.DatabaseURL, nil
	case "sqlite":
		return "file://migrations/analytics_sqlite", "sqlite://" + strings.TrimPrefix(cfg.SQLitePath, "file:"), nil
	default:
		return "", "", fmt.Errorf("unknown KPI_STORE %q", cfg.KPIStore)
	}
}

// maskDatabaseURL hides password in database URL for logging
func maskDatabaseURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:20] + "***" + url[len(url)-10:]
}
