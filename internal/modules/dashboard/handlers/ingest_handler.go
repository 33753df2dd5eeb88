package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/models"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/birdfeeder-analytics-be/internal/shared/utils"
)

type IngestHandler struct {
	ingestService *services.IngestService
}

func NewIngestHandler(ingestService *services.IngestService) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// ImportKPIs godoc
// @Summary Import daily KPIs
// @Description Upsert daily KPI rows by date, then refresh the snapshot
// @Tags Ingest
// @Accept json
// @Produce json
// @Param rows body []models.DailyKPIInput true "Daily KPI rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/kpis [post]
func (h *IngestHandler) ImportKPIs(c *fiber.Ctx) error {
	var rows []models.DailyKPIInput
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "at least one row is required"})
	}

	n, err := h.ingestService.Import(c.UserContext(), rows)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRow) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		utils.LogError("Failed to import daily KPIs", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":  "Daily KPIs imported successfully",
		"imported": n,
	})
}
