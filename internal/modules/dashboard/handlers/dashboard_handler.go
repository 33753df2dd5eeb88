package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	exportService    *services.ExportService
}

func NewDashboardHandler(dashboardService *services.DashboardService, exportService *services.ExportService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// GetDashboard godoc
// @Summary Dashboard view for a selection
// @Description Aggregates, deltas, metric cards and charts for a preset or custom range, optionally compared to the previous period or year
// @Tags Dashboard
// @Produce json
// @Param range query string false "preset (default) or custom"
// @Param days query int false "Preset length in days (default 7)"
// @Param start query string false "Custom range start, YYYY-MM-DD"
// @Param end query string false "Custom range end, YYYY-MM-DD"
// @Param compare query bool false "Enable comparison (default true)"
// @Param mode query string false "period (default) or year"
// @Success 200 {object} models.DashboardResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	sel, err := parseSelection(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.dashboardService.Dashboard(c.UserContext(), sel)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			// the empty view still renders: zero cards, empty charts
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"data":  resp,
			})
		}
		utils.LogError("Failed to build dashboard", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}

// GetPresets godoc
// @Summary Range presets
// @Description Preset catalog (7, 30, 90 days, All Time) and the default custom range
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.PresetsResponse
// @Router /api/dashboard/presets [get]
func (h *DashboardHandler) GetPresets(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.Presets(c.UserContext()))
}

// GetInventory godoc
// @Summary Inventory forecasts
// @Description Forecasts sorted by days left, most urgent first, with urgency tiers
// @Tags Inventory
// @Produce json
// @Success 200 {object} models.InventoryResponse
// @Router /api/inventory [get]
func (h *DashboardHandler) GetInventory(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.Inventory(c.UserContext()))
}

// ExportDashboard godoc
// @Summary Export dashboard
// @Description Download the dashboard for a selection as Excel or PDF
// @Tags Dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param format query string true "excel or pdf"
// @Param range query string false "preset (default) or custom"
// @Param days query int false "Preset length in days"
// @Param start query string false "Custom range start, YYYY-MM-DD"
// @Param end query string false "Custom range end, YYYY-MM-DD"
// @Param compare query bool false "Enable comparison"
// @Param mode query string false "period or year"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /api/dashboard/export [get]
func (h *DashboardHandler) ExportDashboard(c *fiber.Ctx) error {
	format, ok := export.ParseFormat(strings.ToLower(c.Query("format")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be excel or pdf"})
	}

	sel, err := parseSelection(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := h.exportService.Export(c.UserContext(), sel, format)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		utils.LogError("Failed to export dashboard", err, map[string]interface{}{"format": string(format)})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}

// Refresh godoc
// @Summary Refresh data
// @Description Re-fetch daily records and inventory forecasts and replace the snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	snap := h.dashboardService.Refresh(c.UserContext())
	return c.JSON(fiber.Map{
		"message":     "Snapshot refreshed",
		"snapshot_id": snap.ID,
		"fetched_at":  snap.FetchedAt,
		"records":     len(snap.Records),
		"forecasts":   len(snap.Forecasts),
	})
}

// parseSelection reads the selection from the query string. Anything not given
// keeps the dashboard's initial state (last 7 days vs previous period).
func parseSelection(c *fiber.Ctx) (analytics.SelectionState, error) {
	sel := analytics.DefaultSelection()

	switch strings.ToLower(c.Query("range")) {
	case "", "preset":
		sel.Mode = analytics.RangePreset
	case "custom":
		sel.Mode = analytics.RangeCustom
		sel.CustomStart = c.Query("start")
		sel.CustomEnd = c.Query("end")
	default:
		return sel, fmt.Errorf("range must be preset or custom")
	}

	if v := c.Query("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return sel, fmt.Errorf("days must be an integer")
		}
		sel.PresetDays = days
	}

	if v := c.Query("compare"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return sel, fmt.Errorf("compare must be true or false")
		}
		sel.ComparisonEnabled = enabled
	}

	switch strings.ToLower(c.Query("mode")) {
	case "", "period":
		sel.ComparisonMode = analytics.ComparePeriod
	case "year":
		sel.ComparisonMode = analytics.CompareYear
	default:
		return sel, fmt.Errorf("mode must be period or year")
	}

	return sel, nil
}
