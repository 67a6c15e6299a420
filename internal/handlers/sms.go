package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/sms"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SMSHandler struct {
	smsService *sms.Service
}

func NewSMSHandler(smsService *sms.Service) *SMSHandler {
	return &SMSHandler{smsService: smsService}
}

type parseSMSRequest struct {
	UserPhone  string `json:"userPhone"`
	Sender     string `json:"sender"`
	SMSContent string `json:"smsContent"`
}

// Parse runs an incoming message through the transaction parser and the
// fraud detector.
func (h *SMSHandler) Parse(c *fiber.Ctx) error {
	var req parseSMSRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SMSContent == "" {
		return response.BadRequest(c, "smsContent is required")
	}

	result, err := h.smsService.Process(c.Context(), req.UserPhone, req.Sender, req.SMSContent)
	if err != nil {
		return response.ServerError(c, "SMS processing failed")
	}

	return response.Success(c, "SMS processed", result)
}

// RecordSale logs a business sale reported over SMS.
func (h *SMSHandler) RecordSale(c *fiber.Ctx) error {
	var req parseSMSRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SMSContent == "" {
		return response.BadRequest(c, "smsContent is required")
	}

	result, err := h.smsService.ProcessSale(c.Context(), req.UserPhone, req.SMSContent)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.ServerError(c, "Sale processing failed")
	}
	if result.Sale == nil {
		return response.BadRequest(c, "No sale found in message")
	}

	return response.Success(c, "Sale recorded", result)
}
