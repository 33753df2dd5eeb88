package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/inventory"
)

// DashboardResponse is the body of GET /api/dashboard
type DashboardResponse struct {
	SnapshotID uuid.UUID      `json:"snapshot_id"`
	FetchedAt  time.Time      `json:"fetched_at"`
	View       analytics.View `json:"view"`
	Insight    string         `json:"insight"`
}

// InventoryResponse is the body of GET /api/inventory
type InventoryResponse struct {
	SnapshotID uuid.UUID              `json:"snapshot_id"`
	FetchedAt  time.Time              `json:"fetched_at"`
	Forecasts  []inventory.Forecast   `json:"forecasts"`
	Counts     map[inventory.Tier]int `json:"counts"`
}

// PresetsResponse is the body of GET /api/dashboard/presets
type PresetsResponse struct {
	Presets     []analytics.Preset `json:"presets"`
	CustomStart string             `json:"custom_start,omitempty"`
	CustomEnd   string             `json:"custom_end,omitempty"`
}
