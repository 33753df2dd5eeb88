package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/export"
)

// ExportedFile is a rendered dashboard report
type ExportedFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the dashboard for a selection as a downloadable file
type ExportService struct {
	dashboard *DashboardService
	exporter  *export.Service
}

func NewExportService(dashboard *DashboardService, exporter *export.Service) *ExportService {
	return &ExportService{dashboard: dashboard, exporter: exporter}
}

// Export renders the selection's records and summary in format
func (s *ExportService) Export(ctx context.Context, sel analytics.SelectionState, format export.ExportFormat) (*ExportedFile, error) {
	resp, err := s.dashboard.Dashboard(ctx, sel)
	if err != nil {
		return nil, err
	}

	data := BuildExportData(resp.View, resp.Insight, resp.FetchedAt)
	content, contentType, ext, err := s.exporter.Export(data, format)
	if err != nil {
		return nil, err
	}

	return &ExportedFile{
		Content:     content,
		ContentType: contentType,
		Filename:    exportFilename(resp.View, ext),
	}, nil
}

// BuildExportData lays out a view as a report: cards as the summary, one row per day
func BuildExportData(view analytics.View, insight string, createdAt time.Time) *export.ExportData {
	summary := make([]export.SummaryItem, 0, len(view.Cards)+2)
	if view.Window != nil {
		summary = append(summary, export.SummaryItem{Label: "Range", Value: view.Window.String()})
	}
	summary = append(summary, export.SummaryItem{Label: "Days with data", Value: fmt.Sprintf("%d", view.Current.Days)})
	for _, card := range view.Cards {
		value := card.Value
		if card.Delta != nil {
			value = fmt.Sprintf("%s (%+.1f%%)", card.Value, card.Delta.Signed())
		}
		summary = append(summary, export.SummaryItem{Label: card.Title, Value: value})
	}

	rows := make([][]interface{}, 0, len(view.Records))
	for _, r := range view.Records {
		rows = append(rows, []interface{}{
			analytics.FormatDate(r.Date),
			r.DayOfWeek(),
			r.Revenue.InexactFloat64(),
			r.COGS.InexactFloat64(),
			r.NetIncome.InexactFloat64(),
			roundTenth(r.NetMargin()),
		})
	}

	style := export.DefaultStyle()
	style.Orientation = "landscape"

	return &export.ExportData{
		Title:       "Birdfeeder Analytics - " + view.Label,
		Description: insight,
		CreatedAt:   createdAt,
		Summary:     summary,
		Headers:     []string{"Date", "Day", "Revenue", "COGS", "Net Income", "Net Margin %"},
		Rows:        rows,
		Style:       style,
	}
}

func exportFilename(view analytics.View, ext string) string {
	name := "dashboard"
	if view.Window != nil {
		name = fmt.Sprintf("dashboard_%s_%s", analytics.FormatDate(view.Window.Start), analytics.FormatDate(view.Window.End))
	}
	return name + ext
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
