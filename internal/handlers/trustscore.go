package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/trustscore"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TrustScoreHandler struct {
	trustService *trustscore.Service
}

func NewTrustScoreHandler(trustService *trustscore.Service) *TrustScoreHandler {
	return &TrustScoreHandler{trustService: trustService}
}

// GetScore returns the stored trust score.
func (h *TrustScoreHandler) GetScore(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	score, err := h.trustService.GetScore(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to fetch trust score")
	}

	return response.Success(c, "Trust score retrieved", fiber.Map{"trust_score": score})
}

// GetBreakdown returns the per-factor trust score breakdown.
func (h *TrustScoreHandler) GetBreakdown(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	breakdown, err := h.trustService.GetBreakdown(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to compute breakdown")
	}

	return response.Success(c, "Trust score breakdown retrieved", breakdown)
}

// Recompute rebuilds the score from history and persists it.
func (h *TrustScoreHandler) Recompute(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	score, err := h.trustService.Recompute(c.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to recompute trust score")
	}

	return response.Success(c, "Trust score recomputed", fiber.Map{"trust_score": score})
}
