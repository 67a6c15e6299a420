// Package alerts manages the lifecycle of stored fraud alerts and community
// fraud reports.
package alerts

import (
	"context"
	"fmt"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
	"tajiri/internal/services/fraud"
	"tajiri/internal/services/trustscore"
)

// TrustNudger applies incremental trust-score adjustments.
type TrustNudger interface {
	ApplyEvent(ctx context.Context, userID uint, event trustscore.Event) (*trustscore.Adjustment, error)
}

// ActionResult reports an alert status transition.
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Service struct {
	alerts   repositories.FraudAlertRepository
	detector *fraud.Detector
	trust    TrustNudger
}

func NewService(alerts repositories.FraudAlertRepository, detector *fraud.Detector, trust TrustNudger) *Service {
	return &Service{alerts: alerts, detector: detector, trust: trust}
}

// List returns a user's fraud alerts, newest first.
func (s *Service) List(ctx context.Context, userID uint) ([]models.FraudAlert, error) {
	return s.alerts.GetByUser(userID)
}

// Act applies the user's decision to an alert: "block" marks it blocked,
// anything else marks it reviewed.
func (s *Service) Act(ctx context.Context, alertID uint, action string) (*ActionResult, error) {
	status := models.AlertStatusReviewed
	if action == "block" {
		status = models.AlertStatusBlocked
	}

	if err := s.alerts.UpdateStatus(alertID, status); err != nil {
		return nil, err
	}
	return &ActionResult{
		Status:  status,
		Message: fmt.Sprintf("Alert marked as %s", status),
	}, nil
}

// Report records a community fraud report and adjusts the reporter's trust
// score for the outcome they describe.
func (s *Service) Report(ctx context.Context, userID uint, fraudType, details string, wasScam bool, userAction fraud.UserAction) (*fraud.Report, error) {
	report := s.detector.ReportFraud(userID, fraudType, details)

	event := trustscore.FraudReportEvent{WasScam: wasScam, UserAction: string(userAction)}
	if _, err := s.trust.ApplyEvent(ctx, userID, event); err != nil {
		return nil, fmt.Errorf("failed to adjust trust score: %w", err)
	}
	return &report, nil
}

// CheckCall screens a phone call for fraud signals. Pure passthrough; calls
// are not persisted.
func (s *Service) CheckCall(ctx context.Context, callerNumber string, durationSeconds int, userReported bool) fraud.Analysis {
	return s.detector.AnalyzeCall(callerNumber, durationSeconds, userReported)
}
