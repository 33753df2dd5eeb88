package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// weekdayOrder is the fixed Monday..Sunday display order
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// SelectInWindow returns the records dated inside w, keeping their order.
// An out-of-range window yields an empty, non-nil slice.
func SelectInWindow(records []DailyRecord, w TimeWindow) []DailyRecord {
	selected := make([]DailyRecord, 0)
	for _, r := range records {
		if w.Contains(r.Date) {
			selected = append(selected, r)
		}
	}
	return selected
}

// Aggregate reduces records into period statistics
func Aggregate(records []DailyRecord) PeriodStats {
	revenue := decimal.Zero
	netIncome := decimal.Zero
	cogs := decimal.Zero

	for _, r := range records {
		revenue = revenue.Add(r.Revenue)
		netIncome = netIncome.Add(r.NetIncome)
		cogs = cogs.Add(r.COGS)
	}

	return PeriodStats{
		Revenue:   revenue,
		NetIncome: netIncome,
		COGS:      cogs,
		NetMargin: ratioPercent(netIncome, revenue),
		CogsRatio: ratioPercent(cogs, revenue),
		Days:      len(records),
	}
}

// RevenueByWeekday sums revenue per weekday, always returning all seven days
// in Monday..Sunday order
func RevenueByWeekday(records []DailyRecord) []WeekdayRevenue {
	sums := make(map[time.Weekday]decimal.Decimal, len(weekdayOrder))
	for _, r := range records {
		wd := r.Date.Weekday()
		sums[wd] = sums[wd].Add(r.Revenue)
	}

	out := make([]WeekdayRevenue, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		out = append(out, WeekdayRevenue{Day: wd.String(), Revenue: sums[wd]})
	}
	return out
}

// ratioPercent returns part/whole*100, or 0 when whole is 0
func ratioPercent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
