package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

// ErrInvalidRow is returned by Import when a row fails validation
var ErrInvalidRow = errors.New("invalid row")

// RecordWriter persists daily KPI rows, replacing rows with the same date
type RecordWriter interface {
	Upsert(ctx context.Context, rows []models.DailyKPI) error
}

// IngestService writes daily KPI rows and refreshes the dashboard snapshot
type IngestService struct {
	writer    RecordWriter
	dashboard *DashboardService
}

func NewIngestService(writer RecordWriter, dashboard *DashboardService) *IngestService {
	return &IngestService{writer: writer, dashboard: dashboard}
}

// Import validates every row before writing any. Later rows win when a date
// repeats in the same batch.
func (s *IngestService) Import(ctx context.Context, inputs []models.DailyKPIInput) (int, error) {
	byDate := make(map[string]models.DailyKPI, len(inputs))
	for i, in := range inputs {
		row, err := in.ToModel()
		if err != nil {
			return 0, fmt.Errorf("%w %d: date %q: %v", ErrInvalidRow, i, in.Date, err)
		}
		byDate[analytics.FormatDate(row.Date)] = row
	}

	rows := make([]models.DailyKPI, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	if err := s.writer.Upsert(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to store daily kpis: %w", err)
	}

	utils.LogInfo("📥 Daily KPIs imported", map[string]interface{}{"rows": len(rows)})
	s.dashboard.Refresh(ctx)
	return len(rows), nil
}
