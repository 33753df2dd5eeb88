package inventory

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// RawForecast is a forecast row as delivered by the forecast source
type RawForecast struct {
	Item        string  `json:"item"`
	DaysLeft    string  `json:"days_left"`
	OrderAmount float64 `json:"order_amount"`
}

// Forecast is a parsed, classified depletion forecast
type Forecast struct {
	Item                 string  `json:"item"`
	DaysLeftLabel        string  `json:"days_left"`
	DaysLeftNumeric      int     `json:"days_numeric"`
	SuggestedOrderAmount float64 `json:"order_amount"`
	HasSuggestedOrder    bool    `json:"has_suggested_order"`
	Tier                 Tier    `json:"tier"`
	// Unparsed marks labels with neither digits nor "NOW"; they still read as 0 days
	Unparsed bool `json:"unparsed,omitempty"`
}

// ParseDaysLeft turns a label like "NOW", "12 days" or "~3" into a day count.
// The second result is false when the label held nothing usable and the
// 0 fallback was applied.
func ParseDaysLeft(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if strings.Contains(s, "NOW") {
		return 0, true
	}

	run := digitRun.FindString(s)
	if run == "" {
		return 0, false
	}

	n, err := strconv.Atoi(run)
	if err != nil {
		// digits too long for int
		return 0, false
	}
	return n, true
}

// Ingest parses raw rows and sorts them most urgent first.
// Rows with equal day counts keep their source order.
func Ingest(raw []RawForecast) []Forecast {
	out := make([]Forecast, 0, len(raw))
	for _, r := range raw {
		days, ok := ParseDaysLeft(r.DaysLeft)
		amount := r.OrderAmount
		if amount < 0 {
			amount = 0
		}
		out = append(out, Forecast{
			Item:                 r.Item,
			DaysLeftLabel:        r.DaysLeft,
			DaysLeftNumeric:      days,
			SuggestedOrderAmount: amount,
			HasSuggestedOrder:    amount > 0,
			Tier:                 Classify(days),
			Unparsed:             !ok,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeftNumeric < out[j].DaysLeftNumeric
	})
	return out
}

// CountByTier tallies forecasts per urgency tier, including empty tiers
func CountByTier(forecasts []Forecast) map[Tier]int {
	counts := make(map[Tier]int, len(tierOrder))
	for _, t := range tierOrder {
		counts[t] = 0
	}
	for _, f := range forecasts {
		counts[f.Tier]++
	}
	return counts
}
