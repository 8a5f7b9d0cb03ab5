package handlers

import (
	"shopadmin/internal/core/services"
	"shopadmin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns aggregate counts for products, orders and users
// @Summary Dashboard summary
// @Description Aggregate counts by status plus revenue and low stock totals
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard summary")
	}

	return response.Success(c, "Dashboard summary retrieved successfully", summary)
}
