// Package sms orchestrates the processing of an incoming message: parsing it
// for a transaction, screening it for fraud, and feeding the outcome into the
// user's trust score.
package sms

import (
	"context"
	"errors"
	"fmt"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
	"tajiri/internal/services/fraud"
	"tajiri/internal/services/smsparser"
	"tajiri/internal/services/trustscore"
)

// UserLookup resolves the owning user of an incoming message.
type UserLookup interface {
	GetByPhone(phone string) (*models.User, error)
}

// TransactionStore persists parsed transactions.
type TransactionStore interface {
	Create(tx *models.Transaction) error
}

// AlertStore persists fraud alerts.
type AlertStore interface {
	Create(alert *models.FraudAlert) error
}

// TrustNudger applies incremental trust-score adjustments.
type TrustNudger interface {
	ApplyEvent(ctx context.Context, userID uint, event trustscore.Event) (*trustscore.Adjustment, error)
}

// Result carries both halves of processing a message. Transaction is nil when
// the message held no recognizable transaction; Fraud is always populated.
type Result struct {
	Transaction *smsparser.ParsedTransaction `json:"transaction"`
	Fraud       fraud.Analysis               `json:"fraud"`
}

// SaleResult carries a recorded business sale.
type SaleResult struct {
	Sale        *smsparser.ParsedSale `json:"sale"`
	Description string                `json:"description,omitempty"`
}

// Service runs incoming messages through the parser and the fraud detector
// and persists what they find.
type Service struct {
	parser   *smsparser.Parser
	detector *fraud.Detector
	users    UserLookup
	txs      TransactionStore
	alerts   AlertStore
	trust    TrustNudger
}

func NewService(
	parser *smsparser.Parser,
	detector *fraud.Detector,
	users UserLookup,
	txs TransactionStore,
	alerts AlertStore,
	trust TrustNudger,
) *Service {
	return &Service{
		parser:   parser,
		detector: detector,
		users:    users,
		txs:      txs,
		alerts:   alerts,
		trust:    trust,
	}
}

// Process parses and screens one message. Both steps run even when the other
// finds nothing: a scam text with no parseable amount still raises an alert,
// and a clean transaction is recorded regardless of the fraud verdict.
//
// Messages for unregistered phones are analyzed but not persisted, so a user
// can screen texts before signing up.
func (s *Service) Process(ctx context.Context, userPhone, sender, smsContent string) (*Result, error) {
	result := &Result{
		Transaction: s.parser.Parse(smsContent),
		Fraud:       s.detector.AnalyzeSMS(smsContent, sender),
	}

	user, err := s.users.GetByPhone(userPhone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if result.Transaction != nil {
		tx := &models.Transaction{
			UserID:      user.ID,
			Amount:      result.Transaction.Amount,
			Type:        result.Transaction.Type,
			Party:       result.Transaction.Party,
			Reference:   result.Transaction.Reference,
			Description: result.Transaction.Description,
			Source:      result.Transaction.Source,
			SMSContent:  smsContent,
		}
		if err := s.txs.Create(tx); err != nil {
			return nil, fmt.Errorf("failed to record transaction: %w", err)
		}
		if _, err := s.trust.ApplyEvent(ctx, user.ID, trustscore.TransactionEvent{Amount: tx.Amount}); err != nil {
			return nil, fmt.Errorf("failed to adjust trust score: %w", err)
		}
	}

	if result.Fraud.RiskLevel != fraud.RiskSafe {
		alert := &models.FraudAlert{
			UserID:          user.ID,
			Sender:          sender,
			Message:         smsContent,
			RiskLevel:       string(result.Fraud.RiskLevel),
			Confidence:      result.Fraud.Confidence,
			Reasons:         models.StringList(result.Fraud.Reasons),
			Recommendations: models.StringList(result.Fraud.Recommendations),
			Status:          models.AlertStatusPending,
		}
		if err := s.alerts.Create(alert); err != nil {
			return nil, fmt.Errorf("failed to record fraud alert: %w", err)
		}
	}

	return result, nil
}

// ProcessSale records a business sale reported over SMS as an income
// transaction. Sales require a registered user.
func (s *Service) ProcessSale(ctx context.Context, userPhone, smsContent string) (*SaleResult, error) {
	sale := s.parser.ParseSale(smsContent)
	if sale == nil {
		return &SaleResult{}, nil
	}

	user, err := s.users.GetByPhone(userPhone)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Sale - %s", sale.Category)
	tx := &models.Transaction{
		UserID:      user.ID,
		Amount:      sale.Amount,
		Type:        models.TransactionTypeCredit,
		Description: description,
		Source:      sale.Source,
		SMSContent:  smsContent,
	}
	if err := s.txs.Create(tx); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	if _, err := s.trust.ApplyEvent(ctx, user.ID, trustscore.TransactionEvent{Amount: sale.Amount}); err != nil {
		return nil, fmt.Errorf("failed to adjust trust score: %w", err)
	}

	return &SaleResult{Sale: sale, Description: description}, nil
}
