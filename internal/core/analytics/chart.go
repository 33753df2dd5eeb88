package analytics

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Metric keys shared by deltas and cards
const (
	MetricRevenue   = "revenue"
	MetricNetIncome = "net_income"
	MetricNetMargin = "net_margin"
	MetricCogsRatio = "cogs_ratio"
)

// Targets used for the cards' Healthy flag
const (
	NetMarginTarget = 15.0 // percent, healthy above
	CogsRatioLimit  = 40.0 // percent, healthy below
)

// cardConfig describes how one metric is titled, formatted and framed
type cardConfig struct {
	Key      string
	Title    string
	Format   string // "currency", "percentage"
	Inverted bool   // a rise is bad news
	Healthy  func(v float64) bool
}

var cardConfigs = []cardConfig{
	{Key: MetricRevenue, Title: "Total Revenue", Format: "currency", Healthy: func(float64) bool { return true }},
	{Key: MetricNetIncome, Title: "Net Income", Format: "currency", Healthy: func(v float64) bool { return v > 0 }},
	{Key: MetricNetMargin, Title: "Net Margin", Format: "percentage", Healthy: func(v float64) bool { return v > NetMarginTarget }},
	{Key: MetricCogsRatio, Title: "COGS %", Format: "percentage", Inverted: true, Healthy: func(v float64) bool { return v < CogsRatioLimit }},
}

// ToMetricCards builds the KPI tiles for the current period.
// The cost ratio's polarity is inverted: a falling ratio is favorable.
func ToMetricCards(current PeriodStats, deltas map[string]*Delta) []MetricCard {
	values := map[string]float64{
		MetricRevenue:   current.Revenue.InexactFloat64(),
		MetricNetIncome: current.NetIncome.InexactFloat64(),
		MetricNetMargin: current.NetMargin,
		MetricCogsRatio: current.CogsRatio,
	}

	cards := make([]MetricCard, 0, len(cardConfigs))
	for _, cfg := range cardConfigs {
		v := values[cfg.Key]
		card := MetricCard{
			Key:     cfg.Key,
			Title:   cfg.Title,
			Value:   formatStatValue(v, cfg.Format),
			Raw:     v,
			Healthy: cfg.Healthy(v),
			Trend:   "neutral",
		}

		d := deltas[cfg.Key]
		if d == nil {
			// no comparison: frame by the absolute target instead
			card.Favorable = card.Healthy
		} else {
			card.Delta = d
			switch {
			case d.MagnitudePercent == 0:
				card.Favorable = true
			case cfg.Inverted:
				card.Favorable = !d.IsIncrease
			default:
				card.Favorable = d.IsIncrease
			}
			if d.MagnitudePercent > 0 {
				if d.IsIncrease {
					card.Trend = "up"
				} else {
					card.Trend = "down"
				}
			}
		}

		cards = append(cards, card)
	}

	return cards
}

// ToRevenueChart converts the window's records into a line chart of revenue
// and net income by date
func ToRevenueChart(records []DailyRecord) ChartData {
	labels := make([]string, len(records))
	revenue := make([]float64, len(records))
	netIncome := make([]float64, len(records))

	for i, r := range records {
		labels[i] = FormatDate(r.Date)
		revenue[i] = r.Revenue.InexactFloat64()
		netIncome[i] = r.NetIncome.InexactFloat64()
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Revenue", Values: revenue, Color: "#64ffda"},
			{Name: "Net Income", Values: netIncome, Color: "#8892b0"},
		},
	}
}

// ToWeekdayChart converts weekday sums into a bar chart
func ToWeekdayChart(days []WeekdayRevenue) ChartData {
	labels := make([]string, len(days))
	values := make([]float64, len(days))

	for i, d := range days {
		labels[i] = d.Day
		values[i] = d.Revenue.InexactFloat64()
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data:   []ChartSeries{{Name: "Revenue", Values: values, Color: "#64ffda"}},
	}
}

func formatStatValue(num float64, format string) string {
	switch format {
	case "currency":
		if num < 0 {
			return "-$" + humanize.CommafWithDigits(-num, 2)
		}
		return "$" + humanize.CommafWithDigits(num, 2)
	case "percentage":
		return fmt.Sprintf("%.1f%%", num)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}
