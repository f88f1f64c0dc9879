package handlers

import (
	"log"

	"blububb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for dashboard reports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reports := router.Group("/reports")
	reports.Get("/summary", h.HandleSummary)
}

// HandleSummary returns the dashboard summary aggregates.
func (h *ReportHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		log.Printf("Error computing summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not compute summary",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
