package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS daily_kpis (
	date        TEXT PRIMARY KEY,
	revenue     TEXT NOT NULL DEFAULT '0',
	cogs        TEXT NOT NULL DEFAULT '0',
	comps       TEXT NOT NULL DEFAULT '0',
	processing  TEXT NOT NULL DEFAULT '0',
	net_income  TEXT NOT NULL DEFAULT '0',
	extra       TEXT,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type sqliteKPIRepo struct {
	db *sql.DB
}

// NewSQLiteKPIRepo returns a repository over a sqlite database, creating the
// table if it does not exist yet. Money columns are stored as decimal text.
func NewSQLiteKPIRepo(ctx context.Context, db *sql.DB) (KPIRepo, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create daily_kpis table: %w", err)
	}
	return &sqliteKPIRepo{db: db}, nil
}

func (r *sqliteKPIRepo) DailyRecords(ctx context.Context) ([]analytics.DailyRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, revenue, cogs, comps, processing, net_income, extra
		FROM daily_kpis
		ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily kpis: %w", err)
	}
	defer rows.Close()

	var out []models.DailyKPI
	for rows.Next() {
		var (
			k     models.DailyKPI
			date  string
			extra sql.NullString
		)
		if err := rows.Scan(&date, &k.Revenue, &k.COGS, &k.Comps, &k.Processing, &k.NetIncome, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan daily kpi: %w", err)
		}

		k.Date, err = analytics.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in daily_kpis: %w", date, err)
		}
		if extra.Valid && extra.String != "" {
			if err := k.Extra.Scan(extra.String); err != nil {
				return nil, fmt.Errorf("bad extra for %s: %w", date, err)
			}
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models.ToRecords(out), nil
}

func (r *sqliteKPIRepo) Upsert(ctx context.Context, rows []models.DailyKPI) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO daily_kpis (date, revenue, cogs, comps, processing, net_income, extra, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			revenue = excluded.revenue,
			cogs = excluded.cogs,
			comps = excluded.comps,
			processing = excluded.processing,
			net_income = excluded.net_income,
			extra = excluded.extra,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, k := range rows {
		extra, err := extraValue(k.Extra)
		if err != nil {
			return fmt.Errorf("failed to encode extra for %s: %w", analytics.FormatDate(k.Date), err)
		}
		_, err = stmt.ExecContext(ctx,
			analytics.FormatDate(k.Date),
			k.Revenue.String(),
			k.COGS.String(),
			k.Comps.String(),
			k.Processing.String(),
			k.NetIncome.String(),
			extra,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert %s: %w", analytics.FormatDate(k.Date), err)
		}
	}

	return tx.Commit()
}

func extraValue(m datatypes.JSONMap) (interface{}, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return m.Value()
}
