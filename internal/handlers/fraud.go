package handlers

import (
	"errors"

	"tajiri/internal/repositories"
	"tajiri/internal/services/alerts"
	"tajiri/internal/services/fraud"
	"tajiri/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type FraudHandler struct {
	alertService *alerts.Service
}

func NewFraudHandler(alertService *alerts.Service) *FraudHandler {
	return &FraudHandler{alertService: alertService}
}

// ListAlerts returns a user's fraud alerts, newest first.
func (h *FraudHandler) ListAlerts(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, "Invalid user id")
	}

	list, err := h.alertService.List(c.Context(), uint(userID))
	if err != nil {
		return response.ServerError(c, "Failed to fetch fraud alerts")
	}

	return response.Success(c, "Fraud alerts retrieved", list)
}

type alertActionRequest struct {
	Action string `json:"action"`
}

// ActOnAlert applies the user's block/safe decision to an alert.
func (h *FraudHandler) ActOnAlert(c *fiber.Ctx) error {
	alertID, err := c.ParamsInt("alertID")
	if err != nil || alertID <= 0 {
		return response.BadRequest(c, "Invalid alert id")
	}

	var req alertActionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.alertService.Act(c.Context(), uint(alertID), req.Action)
	if err != nil {
		if errors.Is(err, repositories.ErrAlertNotFound) {
			return response.NotFound(c, "Alert not found")
		}
		return response.ServerError(c, "Failed to update alert")
	}

	return response.Success(c, result.Message, result)
}

type fraudReportRequest struct {
	UserID     uint   `json:"user_id"`
	FraudType  string `json:"fraud_type"`
	Details    string `json:"details"`
	WasScam    bool   `json:"was_scam"`
	UserAction string `json:"user_action"`
}

// Report records a community fraud report.
func (h *FraudHandler) Report(c *fiber.Ctx) error {
	var req fraudReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return response.BadRequest(c, "user_id is required")
	}

	report, err := h.alertService.Report(c.Context(), req.UserID, req.FraudType,
		req.Details, req.WasScam, fraud.UserAction(req.UserAction))
	if err != nil {
		return response.ServerError(c, "Failed to record report")
	}

	return response.Success(c, report.Message, report)
}

type callCheckRequest struct {
	CallerNumber    string `json:"caller_number"`
	DurationSeconds int    `json:"duration_seconds"`
	UserReported    bool   `json:"user_reported"`
}

// CheckCall screens a phone call for fraud signals.
func (h *FraudHandler) CheckCall(c *fiber.Ctx) error {
	var req callCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	analysis := h.alertService.CheckCall(c.Context(), req.CallerNumber, req.DurationSeconds, req.UserReported)
	return response.Success(c, "Call analyzed", analysis)
}
