package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
)

// DailyKPI is one row of the daily_kpis table
type DailyKPI struct {
	Date time.Time `gorm:"type:date;primaryKey" json:"date"`

	// Money
	Revenue    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"revenue"`
	COGS       decimal.Decimal `gorm:"column:cogs;type:numeric(14,2);not null;default:0" json:"cogs"`
	Comps      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"comps"`
	Processing decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"processing"`
	NetIncome  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"net_income"`

	// Anything else the upstream sheet carries
	Extra datatypes.JSONMap `gorm:"type:jsonb" json:"extra,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (DailyKPI) TableName() string {
	return "daily_kpis"
}

// ToRecord converts the row to the analytics record type
func (k DailyKPI) ToRecord() analytics.DailyRecord {
	return analytics.DailyRecord{
		Date:       analytics.TruncateDay(k.Date),
		Revenue:    k.Revenue,
		COGS:       k.COGS,
		NetIncome:  k.NetIncome,
		Comps:      k.Comps,
		Processing: k.Processing,
		Extra:      map[string]interface{}(k.Extra),
	}
}

// ToRecords converts rows, keeping their order
func ToRecords(rows []DailyKPI) []analytics.DailyRecord {
	records := make([]analytics.DailyRecord, len(rows))
	for i, row := range rows {
		records[i] = row.ToRecord()
	}
	return records
}

// DailyKPIInput is one row of POST /api/kpis
type DailyKPIInput struct {
	Date       string                 `json:"date"` // YYYY-MM-DD
	Revenue    decimal.Decimal        `json:"revenue"`
	COGS       decimal.Decimal        `json:"cogs"`
	Comps      decimal.Decimal        `json:"comps"`
	Processing decimal.Decimal        `json:"processing"`
	NetIncome  decimal.Decimal        `json:"net_income"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// ToModel validates the date and builds the row
func (in DailyKPIInput) ToModel() (DailyKPI, error) {
	date, err := analytics.ParseDate(in.Date)
	if err != nil {
		return DailyKPI{}, err
	}
	return DailyKPI{
		Date:       date,
		Revenue:    in.Revenue,
		COGS:       in.COGS,
		Comps:      in.Comps,
		Processing: in.Processing,
		NetIncome:  in.NetIncome,
		Extra:      datatypes.JSONMap(in.Extra),
	}, nil
}
