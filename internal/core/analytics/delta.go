package analytics

import "math"

// CalculateDelta compares current against previous.
// It returns nil when previous is 0: a change against a zero baseline has no
// meaningful percentage, which is not the same as a 0% change.
func CalculateDelta(current, previous float64) *Delta {
	if previous == 0 {
		return nil
	}
	return &Delta{
		MagnitudePercent: math.Abs((current-previous)/previous) * 100,
		IsIncrease:       current >= previous,
	}
}

// CompareStats computes per-metric deltas between two periods.
// A nil previous yields an empty map.
func CompareStats(current PeriodStats, previous *PeriodStats) map[string]*Delta {
	deltas := map[string]*Delta{}
	if previous == nil {
		return deltas
	}

	deltas[MetricRevenue] = CalculateDelta(current.Revenue.InexactFloat64(), previous.Revenue.InexactFloat64())
	deltas[MetricNetIncome] = CalculateDelta(current.NetIncome.InexactFloat64(), previous.NetIncome.InexactFloat64())
	deltas[MetricNetMargin] = CalculateDelta(current.NetMargin, previous.NetMargin)
	deltas[MetricCogsRatio] = CalculateDelta(current.CogsRatio, previous.CogsRatio)
	return deltas
}
