package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRange is returned when a selection cannot be turned into a window
var ErrInvalidRange = errors.New("invalid range")

// RangeMode selects how the current window is derived
type RangeMode string

const (
	RangePreset RangeMode = "preset"
	RangeCustom RangeMode = "custom"
)

// ComparisonMode selects how the previous window is derived
type ComparisonMode string

const (
	ComparePeriod ComparisonMode = "period" // trailing period of the same length
	CompareYear   ComparisonMode = "year"   // same calendar dates one year back
)

// DailyRecord is one day of operational metrics
type DailyRecord struct {
	Date       time.Time              `json:"date"`
	Revenue    decimal.Decimal        `json:"revenue"`
	COGS       decimal.Decimal        `json:"cogs"`
	NetIncome  decimal.Decimal        `json:"net_income"`
	Comps      decimal.Decimal        `json:"comps"`
	Processing decimal.Decimal        `json:"processing"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// DayOfWeek returns the English weekday name of the record's date
func (r DailyRecord) DayOfWeek() string {
	return r.Date.Weekday().String()
}

// NetMargin returns the record's own net margin in percent (0 when revenue is 0)
func (r DailyRecord) NetMargin() float64 {
	return ratioPercent(r.NetIncome, r.Revenue)
}

// TimeWindow is an inclusive range of calendar dates
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of calendar days covered by the window
func (w TimeWindow) Days() int {
	return daysBetween(w.Start, w.End) + 1
}

// Contains reports whether d falls inside the window, both ends inclusive
func (w TimeWindow) Contains(d time.Time) bool {
	d = TruncateDay(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// String formats the window as "start to end"
func (w TimeWindow) String() string {
	return FormatDate(w.Start) + " to " + FormatDate(w.End)
}

// SelectionState is the operator's current choice of range and comparison.
// It is a value: changing the selection means building a new one.
type SelectionState struct {
	Mode              RangeMode      `json:"mode"`
	PresetDays        int            `json:"preset_days"`
	CustomStart       string         `json:"custom_start,omitempty"`
	CustomEnd         string         `json:"custom_end,omitempty"`
	ComparisonEnabled bool           `json:"comparison_enabled"`
	ComparisonMode    ComparisonMode `json:"comparison_mode"`
}

// DefaultSelection mirrors the dashboard's initial state: last 7 days vs previous period
func DefaultSelection() SelectionState {
	return SelectionState{
		Mode:              RangePreset,
		PresetDays:        7,
		ComparisonEnabled: true,
		ComparisonMode:    ComparePeriod,
	}
}

// PeriodStats summarises a set of daily records
type PeriodStats struct {
	Revenue   decimal.Decimal `json:"revenue"`
	NetIncome decimal.Decimal `json:"net_income"`
	COGS      decimal.Decimal `json:"cogs"`
	NetMargin float64         `json:"net_margin"` // percent
	CogsRatio float64         `json:"cogs_ratio"` // percent
	Days      int             `json:"days"`
}

// Delta is a signed percentage change between two values
type Delta struct {
	MagnitudePercent float64 `json:"magnitude_percent"`
	IsIncrease       bool    `json:"is_increase"`
}

// Signed returns the delta as a signed percentage
func (d Delta) Signed() float64 {
	if d.IsIncrease {
		return d.MagnitudePercent
	}
	return -d.MagnitudePercent
}

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar"
	Labels []string      `json:"labels"` // X-axis labels
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// WeekdayRevenue is the revenue summed over all records falling on one weekday
type WeekdayRevenue struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MetricCard is one KPI tile: value, comparison and how to frame it
type MetricCard struct {
	Key       string  `json:"key"`
	Title     string  `json:"title"`
	Value     string  `json:"value"`
	Raw       float64 `json:"raw"`
	Delta     *Delta  `json:"delta,omitempty"`
	Favorable bool    `json:"favorable"` // direction of the delta is good news
	Healthy   bool    `json:"healthy"`   // absolute value is within target
	Trend     string  `json:"trend"`     // "up", "down", "neutral"
}
