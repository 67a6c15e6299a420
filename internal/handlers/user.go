package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/users"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *users.Service
}

func NewUserHandler(userService *users.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a new user account keyed by phone number.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Register(c.Context(), req.Phone, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidPhone), errors.Is(err, users.ErrMissingName):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", user)
}

// GetByPhone returns a user profile.
func (h *UserHandler) GetByPhone(c *fiber.Ctx) error {
	user, err := h.userService.GetByPhone(c.Context(), c.Params("phone"))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Failed to fetch user")
	}

	return response.Success(c, "User retrieved successfully", user)
}
