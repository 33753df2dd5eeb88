package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
)

// KPIRepo supplies daily KPI records, ascending by date
type KPIRepo interface {
	DailyRecords(ctx context.Context) ([]analytics.DailyRecord, error)
	Upsert(ctx context.Context, rows []models.DailyKPI) error
}

type kpiRepo struct {
	db *gorm.DB
}

// NewKPIRepo returns the Postgres-backed repository
func NewKPIRepo(db *gorm.DB) KPIRepo {
	return &kpiRepo{db: db}
}

func (r *kpiRepo) DailyRecords(ctx context.Context) ([]analytics.DailyRecord, error) {
	var rows []models.DailyKPI
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily kpis: %w", err)
	}
	return models.ToRecords(rows), nil
}

func (r *kpiRepo) Upsert(ctx context.Context, rows []models.DailyKPI) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"revenue", "cogs", "comps", "processing", "net_income", "extra", "updated_at"}),
		}).
		Create(&rows).Error
}
