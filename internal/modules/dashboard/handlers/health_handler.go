package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/services"
)

type HealthHandler struct {
	dashboardService *services.DashboardService
	insightProvider  string
}

func NewHealthHandler(dashboardService *services.DashboardService, insightProvider string) *HealthHandler {
	return &HealthHandler{dashboardService: dashboardService, insightProvider: insightProvider}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and whether a snapshot has been loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status":   "ok",
		"service":  "analytics-api",
		"provider": h.insightProvider,
		"loaded":   false,
	}
	if snap, ok := h.dashboardService.Loaded(); ok {
		resp["loaded"] = true
		resp["snapshot_id"] = snap.ID
		resp["fetched_at"] = snap.FetchedAt
	}
	return c.JSON(resp)
}
