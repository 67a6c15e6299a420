package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/dashboard"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *dashboard.Service
}

func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the user's recent activity and trust score.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	summary, err := h.dashboardService.GetSummary(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard data retrieved", summary)
}

// GetTaxRecords returns a quarterly tax summary.
func (h *DashboardHandler) GetTaxRecords(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	summary, err := h.dashboardService.GetTaxSummary(c.Context(), uint(userID), c.Query("period"))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to generate tax records")
	}

	return response.Success(c, "Tax records generated", summary)
}
