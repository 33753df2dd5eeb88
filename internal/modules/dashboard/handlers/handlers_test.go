package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/inventory"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/services"
)

type memStore struct {
	records []analytics.DailyRecord
}

func (m *memStore) DailyRecords(ctx context.Context) ([]analytics.DailyRecord, error) {
	return m.records, nil
}

func (m *memStore) Upsert(ctx context.Context, rows []models.DailyKPI) error {
	for _, row := range rows {
		m.records = append(m.records, row.ToRecord())
	}
	return nil
}

type staticForecasts []inventory.RawForecast

func (s staticForecasts) Forecasts(ctx context.Context) ([]inventory.RawForecast, error) {
	return s, nil
}

func setupApp(records []analytics.DailyRecord) *fiber.App {
	store := &memStore{records: records}
	dashboardService := services.NewDashboardService(store, staticForecasts{
		{Item: "Peanuts", DaysLeft: "12 days", OrderAmount: 10},
		{Item: "Suet Cakes", DaysLeft: "NOW", OrderAmount: 25},
	}, services.NewInsightService(nil)).WithClock(func() time.Time {
		return time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	})

	healthHandler := NewHealthHandler(dashboardService, "none")
	dashboardHandler := NewDashboardHandler(dashboardService, services.NewExportService(dashboardService, export.NewService()))
	ingestHandler := NewIngestHandler(services.NewIngestService(store, dashboardService))

	app := fiber.New()
	app.Get("/health", healthHandler.GetHealth)
	api := app.Group("/api")
	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/dashboard/presets", dashboardHandler.GetPresets)
	api.Get("/dashboard/export", dashboardHandler.ExportDashboard)
	api.Get("/inventory", dashboardHandler.GetInventory)
	api.Post("/refresh", dashboardHandler.Refresh)
	api.Post("/kpis", ingestHandler.ImportKPIs)
	return app
}

func fourteenDays() []analytics.DailyRecord {
	start := analytics.Date(2024, time.January, 1)
	out := make([]analytics.DailyRecord, 14)
	for i := range out {
		revenue := int64(50)
		if i >= 7 {
			revenue = 100
		}
		out[i] = analytics.DailyRecord{
			Date:      start.AddDate(0, 0, i),
			Revenue:   decimal.NewFromInt(revenue),
			COGS:      decimal.NewFromInt(revenue / 4),
			NetIncome: decimal.NewFromInt(revenue / 5),
		}
	}
	return out
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["loaded"])
}

func TestGetDashboardDefaults(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Last 7 Days vs Previous Period", body.View.Label)
	assert.Len(t, body.View.Records, 7)
	assert.True(t, body.View.Current.Revenue.Equal(decimal.NewFromInt(700)))
	require.NotNil(t, body.View.Previous)
	assert.True(t, body.View.Previous.Revenue.Equal(decimal.NewFromInt(350)))
	require.NotNil(t, body.View.Deltas[analytics.MetricRevenue])
	assert.InDelta(t, 100.0, body.View.Deltas[analytics.MetricRevenue].MagnitudePercent, 1e-9)
}

func TestGetDashboardCustomYearOverYear(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard?range=custom&start=2024-01-02&end=2024-01-05&mode=year", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-01-02 to 2024-01-05 vs Previous Year", body.View.Label)
	assert.Len(t, body.View.Records, 4)
	require.NotNil(t, body.View.PreviousWindow)
	assert.Equal(t, "2023-01-02", analytics.FormatDate(body.View.PreviousWindow.Start))
	assert.Nil(t, body.View.Previous)
	assert.Contains(t, body.Insight, "No comparison data")
}

func TestGetDashboardComparisonOff(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard?days=14&compare=false", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "All Time", body.View.Label)
	assert.Len(t, body.View.Records, 14)
	assert.Nil(t, body.View.PreviousWindow)
}

func TestGetDashboardInvalidRange(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard?range=custom&start=2024-01-09&end=2024-01-02", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body["error"], "invalid range")
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	view := data["view"].(map[string]interface{})
	assert.Empty(t, view["records"])
}

func TestGetDashboardPresetTooLong(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard?days=4611686018427387904", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp.Body)["error"], "invalid range")
}

func TestGetDashboardBadQuery(t *testing.T) {
	app := setupApp(fourteenDays())

	for _, q := range []string{"days=abc", "compare=maybe", "mode=quarter", "range=rolling"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard?"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, q)
	}
}

func TestGetPresets(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/presets", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body models.PresetsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Presets, 4)
	assert.Equal(t, "All Time", body.Presets[3].Label)
	assert.Equal(t, "2024-01-07", body.CustomStart)
	assert.Equal(t, "2024-01-14", body.CustomEnd)
}

func TestGetInventory(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/inventory", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body models.InventoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Forecasts, 2)
	assert.Equal(t, "Suet Cakes", body.Forecasts[0].Item)
	assert.Equal(t, inventory.TierCritical, body.Forecasts[0].Tier)
	assert.Equal(t, inventory.TierWatch, body.Forecasts[1].Tier)
	assert.Equal(t, 1, body.Counts[inventory.TierCritical])
}

func TestExportDashboard(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/export?format=pdf&days=7", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="dashboard_2024-01-08_2024-01-14.pdf"`)

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestExportDashboardBadFormat(t *testing.T) {
	app := setupApp(fourteenDays())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/export?format=csv", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRefreshAndImport(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest("POST", "/api/kpis", strings.NewReader(`[
		{"date":"2024-03-01","revenue":"120.50","cogs":"30","net_income":"25"},
		{"date":"2024-03-02","revenue":80,"cogs":20,"net_income":10}
	]`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), decodeBody(t, resp.Body)["imported"])

	resp, err = app.Test(httptest.NewRequest("POST", "/api/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), decodeBody(t, resp.Body)["records"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/dashboard?days=2&compare=false", nil))
	require.NoError(t, err)
	var body models.DashboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.View.Current.Revenue.Equal(decimal.RequireFromString("200.5")))
}

func TestImportRejectsBadRows(t *testing.T) {
	app := setupApp(nil)

	for _, payload := range []string{`[]`, `[{"date":"03/01/2024"}]`, `{"date":"2024-03-01"}`} {
		req := httptest.NewRequest("POST", "/api/kpis", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, payload)
	}
}
