package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/chama"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ChamaHandler struct {
	chamaService *chama.Service
}

func NewChamaHandler(chamaService *chama.Service) *ChamaHandler {
	return &ChamaHandler{chamaService: chamaService}
}

type createChamaRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	MonthlyTarget float64 `json:"monthly_target"`
	CreatorID     uint    `json:"creator_id"`
}

// Create registers a new savings circle and enrolls its creator.
func (h *ChamaHandler) Create(c *fiber.Ctx) error {
	var req createChamaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.CreatorID == 0 {
		return response.BadRequest(c, "name and creator_id are required")
	}

	result, err := h.chamaService.Create(c.Context(), req.Name, req.Description, req.MonthlyTarget, req.CreatorID)
	if err != nil {
		return response.ServerError(c, "Failed to create chama")
	}

	return response.Created(c, "Chama created", result)
}

type joinChamaRequest struct {
	UserID uint `json:"user_id"`
}

// Join enrolls a user in an existing chama.
func (h *ChamaHandler) Join(c *fiber.Ctx) error {
	chamaID, err := c.ParamsInt("chamaID")
	if err != nil || chamaID <= 0 {
		return response.BadRequest(c, "Invalid chama id")
	}

	var req joinChamaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "user_id is required")
	}

	if err := h.chamaService.Join(c.Context(), uint(chamaID), req.UserID); err != nil {
		if errors.Is(err, repositories.ErrChamaNotFound) {
			return response.NotFound(c, "Chama not found")
		}
		return response.ServerError(c, "Failed to join chama")
	}

	return response.Success(c, "Joined chama", nil)
}

// ListForUser returns the chamas a user belongs to.
func (h *ChamaHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	chamas, err := h.chamaService.ListForUser(c.Context(), uint(userID))
	if err != nil {
		return response.ServerError(c, "Failed to fetch chamas")
	}

	return response.Success(c, "Chamas retrieved", chamas)
}
