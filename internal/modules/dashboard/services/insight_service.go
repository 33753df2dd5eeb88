package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/inventory"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

const insightSystemPrompt = `You are an operations analyst for a small retail business.
Given the facts below, write at most three short sentences for the owner.
Mention the revenue change if one is given, call out cost or margin problems,
and name urgent inventory. Do not invent numbers.`

// InsightService writes the "operational insight" paragraph
type InsightService struct {
	llm     *llm.Service
	timeout time.Duration
}

// NewInsightService creates the service; llmService may be nil or disabled,
// in which case only the deterministic summary is produced
func NewInsightService(llmService *llm.Service) *InsightService {
	return &InsightService{llm: llmService, timeout: 8 * time.Second}
}

// Summarize returns the insight for view. Generation errors fall back to the
// deterministic text.
func (s *InsightService) Summarize(ctx context.Context, view analytics.View, forecasts []inventory.Forecast) string {
	facts := insightFacts(view, forecasts)
	fallback := strings.Join(facts, " ")

	if s == nil || !s.llm.Enabled() {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.llm.GenerateResponse(ctx, insightSystemPrompt, "- "+strings.Join(facts, "\n- "))
	if err != nil || strings.TrimSpace(text) == "" {
		if err == nil {
			err = fmt.Errorf("empty response")
		}
		utils.LogError("Insight generation failed, using fallback", err, map[string]interface{}{
			"provider": s.llm.GetProviderName(),
		})
		return fallback
	}
	return strings.TrimSpace(text)
}

// insightFacts states the view in plain sentences
func insightFacts(view analytics.View, forecasts []inventory.Forecast) []string {
	facts := []string{fmt.Sprintf("Showing performance for %s.", view.Label)}

	if view.Current.Days == 0 {
		facts = append(facts, "No records fall inside this range.")
	} else if view.Selection.ComparisonEnabled {
		if d := view.Deltas[analytics.MetricRevenue]; d != nil {
			facts = append(facts, fmt.Sprintf("Revenue is %+.1f%% changed vs previous.", d.Signed()))
		} else {
			facts = append(facts, "No comparison data is available for the previous range.")
		}
	}

	if view.Current.Days > 0 {
		facts = append(facts, fmt.Sprintf("Net margin is %.1f%% and COGS is %.1f%% of revenue.", view.Current.NetMargin, view.Current.CogsRatio))
		if view.Current.CogsRatio >= analytics.CogsRatioLimit {
			facts = append(facts, fmt.Sprintf("COGS is above the %.0f%% limit.", analytics.CogsRatioLimit))
		}
	}

	var critical []string
	for _, f := range forecasts {
		if f.Tier == inventory.TierCritical {
			critical = append(critical, f.Item)
		}
	}
	if len(critical) > 0 {
		facts = append(facts, fmt.Sprintf("%d item(s) need reordering now: %s.", len(critical), strings.Join(critical, ", ")))
	}

	return facts
}
