package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/savings"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SavingsHandler struct {
	savingsService *savings.Service
}

func NewSavingsHandler(savingsService *savings.Service) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

type createGoalRequest struct {
	UserID       uint    `json:"user_id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

// CreateGoal opens a new savings goal.
func (h *SavingsHandler) CreateGoal(c *fiber.Ctx) error {
	var req createGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 || req.Name == "" || req.TargetAmount <= 0 {
		return response.BadRequest(c, "user_id, name and a positive target_amount are required")
	}

	goal, err := h.savingsService.CreateGoal(c.Context(), req.UserID, req.Name, req.TargetAmount)
	if err != nil {
		return response.ServerError(c, "Failed to create goal")
	}

	return response.Created(c, "Savings goal created", goal)
}

// ListGoals returns a user's savings goals.
func (h *SavingsHandler) ListGoals(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	goals, err := h.savingsService.ListGoals(c.Context(), uint(userID))
	if err != nil {
		return response.ServerError(c, "Failed to fetch goals")
	}

	return response.Success(c, "Savings goals retrieved", goals)
}

type contributionRequest struct {
	UserID uint    `json:"user_id"`
	GoalID *uint   `json:"goal_id"`
	Amount float64 `json:"amount"`
}

// Contribute records a savings contribution, optionally against a goal.
func (h *SavingsHandler) Contribute(c *fiber.Ctx) error {
	var req contributionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "user_id is required")
	}

	result, err := h.savingsService.Contribute(c.Context(), req.UserID, req.GoalID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGoalNotFound):
			return response.NotFound(c, "Goal not found")
		case errors.Is(err, savings.ErrGoalOwnership):
			return response.BadRequest(c, err.Error())
		default:
			return response.BadRequest(c, "Failed to record contribution")
		}
	}

	return response.Success(c, "Contribution recorded", result)
}

type achieveGoalRequest struct {
	UserID uint `json:"user_id"`
}

// AchieveGoal marks a goal achieved ahead of its target.
func (h *SavingsHandler) AchieveGoal(c *fiber.Ctx) error {
	goalID, err := c.ParamsInt("goalID")
	if err != nil || goalID <= 0 {
		return response.BadRequest(c, "Invalid goal id")
	}

	var req achieveGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "user_id is required")
	}

	goal, err := h.savingsService.AchieveGoal(c.Context(), req.UserID, uint(goalID))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGoalNotFound):
			return response.NotFound(c, "Goal not found")
		case errors.Is(err, savings.ErrGoalOwnership):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Failed to update goal")
		}
	}

	return response.Success(c, "Goal achieved", goal)
}
