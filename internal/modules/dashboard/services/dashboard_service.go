package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/inventory"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

// RecordSource supplies daily records ascending by date
type RecordSource interface {
	DailyRecords(ctx context.Context) ([]analytics.DailyRecord, error)
}

// ForecastSource supplies raw forecasts in any order
type ForecastSource interface {
	Forecasts(ctx context.Context) ([]inventory.RawForecast, error)
}

// Snapshot is one fetch of both sources. It is never mutated after creation.
type Snapshot struct {
	ID        uuid.UUID
	FetchedAt time.Time
	Records   []analytics.DailyRecord
	Forecasts []inventory.Forecast
}

// DashboardService owns the current snapshot and derives views from it
type DashboardService struct {
	records   RecordSource
	forecasts ForecastSource
	insight   *InsightService
	now       func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot

	refreshMu sync.Mutex
}

func NewDashboardService(records RecordSource, forecasts ForecastSource, insight *InsightService) *DashboardService {
	return &DashboardService{
		records:   records,
		forecasts: forecasts,
		insight:   insight,
		now:       time.Now,
	}
}

// WithClock replaces the time source (tests)
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Refresh fetches both sources in parallel and replaces the snapshot wholesale.
// A failing source is logged and treated as empty; Refresh itself does not fail.
func (s *DashboardService) Refresh(ctx context.Context) *Snapshot {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	var (
		records []analytics.DailyRecord
		raw     []inventory.RawForecast
		g       errgroup.Group
	)

	g.Go(func() error {
		var err error
		records, err = s.records.DailyRecords(ctx)
		if err != nil {
			utils.LogWarn("Daily records unavailable, using empty set", map[string]interface{}{"error": err.Error()})
			records = nil
		}
		return nil
	})
	g.Go(func() error {
		if s.forecasts == nil {
			return nil
		}
		var err error
		raw, err = s.forecasts.Forecasts(ctx)
		if err != nil {
			utils.LogWarn("Inventory forecasts unavailable, using empty set", map[string]interface{}{"error": err.Error()})
			raw = nil
		}
		return nil
	})
	_ = g.Wait()

	if records == nil {
		records = []analytics.DailyRecord{}
	}

	snap := &Snapshot{
		ID:        uuid.New(),
		FetchedAt: s.now(),
		Records:   records,
		Forecasts: inventory.Ingest(raw),
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	utils.LogInfo("📊 Snapshot refreshed", map[string]interface{}{
		"snapshot_id": snap.ID.String(),
		"records":     len(snap.Records),
		"forecasts":   len(snap.Forecasts),
	})
	return snap
}

// Current returns the current snapshot, loading one on first use
func (s *DashboardService) Current(ctx context.Context) *Snapshot {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil {
		return snap
	}
	return s.Refresh(ctx)
}

// Loaded reports whether a snapshot exists, without triggering a fetch
func (s *DashboardService) Loaded() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Dashboard analyzes the current snapshot for sel. On ErrInvalidRange the
// response still carries an empty view alongside the error.
func (s *DashboardService) Dashboard(ctx context.Context, sel analytics.SelectionState) (*models.DashboardResponse, error) {
	snap := s.Current(ctx)

	view, err := analytics.Analyze(sel, snap.Records, s.now())
	resp := &models.DashboardResponse{
		SnapshotID: snap.ID,
		FetchedAt:  snap.FetchedAt,
		View:       view,
	}
	if err != nil {
		return resp, err
	}

	resp.Insight = s.insight.Summarize(ctx, view, snap.Forecasts)
	return resp, nil
}

// Inventory returns the snapshot's forecasts, most urgent first
func (s *DashboardService) Inventory(ctx context.Context) *models.InventoryResponse {
	snap := s.Current(ctx)
	return &models.InventoryResponse{
		SnapshotID: snap.ID,
		FetchedAt:  snap.FetchedAt,
		Forecasts:  snap.Forecasts,
		Counts:     inventory.CountByTier(snap.Forecasts),
	}
}

// Presets returns the range presets and the default custom range for the snapshot
func (s *DashboardService) Presets(ctx context.Context) *models.PresetsResponse {
	snap := s.Current(ctx)

	dates := make([]time.Time, len(snap.Records))
	for i, r := range snap.Records {
		dates[i] = r.Date
	}

	resp := &models.PresetsResponse{Presets: analytics.Presets(len(snap.Records))}
	if start, end, ok := analytics.DefaultCustomRange(dates); ok {
		resp.CustomStart = start
		resp.CustomEnd = end
	}
	return resp
}
