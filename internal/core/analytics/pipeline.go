package analytics

import (
	"fmt"
	"time"
)

// View is everything the presentation layer needs for one selection
type View struct {
	Selection      SelectionState    `json:"selection"`
	Label          string            `json:"label"`
	Window         *TimeWindow       `json:"window"`
	PreviousWindow *TimeWindow       `json:"previous_window,omitempty"`
	Current        PeriodStats       `json:"current"`
	Previous       *PeriodStats      `json:"previous"`
	Deltas         map[string]*Delta `json:"deltas"`
	Cards          []MetricCard      `json:"cards"`
	Records        []DailyRecord     `json:"records"`
	RevenueChart   ChartData         `json:"revenue_chart"`
	Weekday        []WeekdayRevenue  `json:"weekday"`
	WeekdayChart   ChartData         `json:"weekday_chart"`
}

// HasComparison reports whether previous-period data was found
func (v View) HasComparison() bool {
	return v.Previous != nil
}

// Analyze derives the full view for a selection over an ascending record set.
// It is a pure function of its inputs; today only matters when records is empty.
func Analyze(sel SelectionState, records []DailyRecord, today time.Time) (View, error) {
	dates := make([]time.Time, len(records))
	for i, r := range records {
		dates[i] = r.Date
	}

	window, err := ResolveWindow(sel, dates, today)
	if err != nil {
		return EmptyView(sel, len(records)), err
	}

	current := SelectInWindow(records, window)
	view := newView(sel, len(records), current)
	view.Window = &window

	if sel.ComparisonEnabled && len(current) > 0 {
		prevWindow := ResolvePreviousWindow(window, sel.ComparisonMode)
		view.PreviousWindow = &prevWindow

		if previous := SelectInWindow(records, prevWindow); len(previous) > 0 {
			stats := Aggregate(previous)
			view.Previous = &stats
		}
	}

	view.Deltas = CompareStats(view.Current, view.Previous)
	view.Cards = ToMetricCards(view.Current, view.Deltas)
	return view, nil
}

// EmptyView is what an unusable selection degrades to: zero aggregates, no records
func EmptyView(sel SelectionState, totalRecords int) View {
	return newView(sel, totalRecords, []DailyRecord{})
}

func newView(sel SelectionState, totalRecords int, current []DailyRecord) View {
	stats := Aggregate(current)
	weekday := RevenueByWeekday(current)
	deltas := map[string]*Delta{}

	return View{
		Selection:    sel,
		Label:        SelectionLabel(sel, totalRecords),
		Current:      stats,
		Deltas:       deltas,
		Cards:        ToMetricCards(stats, deltas),
		Records:      current,
		RevenueChart: ToRevenueChart(current),
		Weekday:      weekday,
		WeekdayChart: ToWeekdayChart(weekday),
	}
}

// SelectionLabel renders the header line, e.g. "Last 7 Days vs Previous Period"
func SelectionLabel(sel SelectionState, totalRecords int) string {
	var label string
	switch {
	case sel.Mode == RangeCustom:
		label = fmt.Sprintf("%s to %s", sel.CustomStart, sel.CustomEnd)
	case totalRecords > 0 && sel.PresetDays == totalRecords:
		label = "All Time"
	default:
		label = fmt.Sprintf("Last %d Days", sel.PresetDays)
	}

	if sel.ComparisonEnabled {
		if sel.ComparisonMode == CompareYear {
			label += " vs Previous Year"
		} else {
			label += " vs Previous Period"
		}
	}
	return label
}

// Preset is one entry of the range picker
type Preset struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// Presets returns the fixed day presets plus "All Time" sized to the record set
func Presets(totalRecords int) []Preset {
	presets := []Preset{
		{Label: "7 Days", Days: 7},
		{Label: "30 Days", Days: 30},
		{Label: "90 Days", Days: 90},
	}
	if totalRecords > 0 {
		presets = append(presets, Preset{Label: "All Time", Days: totalRecords})
	}
	return presets
}
