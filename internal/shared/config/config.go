package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string
	Env  string

	// KPI store: "postgres" or "sqlite"
	KPIStore    string
	DatabaseURL string
	SQLitePath  string

	// Inventory forecast webhook
	WebhookURL      string
	WebhookKey      string
	WebhookValue    string
	ForecastTimeout time.Duration

	// Cron expression with seconds field; empty disables scheduled refresh
	RefreshSchedule string

	// Operational insight generation; empty provider means deterministic text only
	LLMProvider string
	LLMModel    string
	OpenAIKey   string
	GroqKey     string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
		KPIStore:        os.Getenv("KPI_STORE"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      os.Getenv("SQLITE_PATH"),
		WebhookURL:      os.Getenv("WEBHOOK_URL"),
		WebhookKey:      os.Getenv("WEBHOOK_KEY"),
		WebhookValue:    os.Getenv("WEBHOOK_VALUE"),
		RefreshSchedule: os.Getenv("REFRESH_SCHEDULE"),
		LLMProvider:     os.Getenv("LLM_PROVIDER"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GroqKey:         os.Getenv("GROQ_API_KEY"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.KPIStore == "" {
		if cfg.DatabaseURL != "" {
			cfg.KPIStore = "postgres"
		} else {
			cfg.KPIStore = "sqlite"
		}
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "analytics.db"
	}

	cfg.ForecastTimeout = 10 * time.Second
	if v := os.Getenv("FORECAST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ForecastTimeout = d
		} else if secs, err := strconv.Atoi(v); err == nil {
			cfg.ForecastTimeout = time.Duration(secs) * time.Second
		} else {
			log.Warn().Str("value", v).Msg("invalid FORECAST_TIMEOUT, using default")
		}
	}

	return cfg
}

// IsProduction reports whether ENV is set to production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
