// Package dashboard aggregates a user's recent financial activity into the
// summary and tax views.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
)

const (
	recentTransactionLimit = 10
	taxWindowMonths        = 3
)

// Summary is the home-screen view: the latest transactions with running
// totals over them and the current trust score.
type Summary struct {
	Transactions  []models.Transaction `json:"transactions"`
	TotalIncome   float64              `json:"total_income"`
	TotalExpenses float64              `json:"total_expenses"`
	Balance       float64              `json:"balance"`
	TrustScore    int                  `json:"trust_score"`
}

// TaxSummary is a quarterly income statement assembled from parsed
// transactions, formatted for KRA-style reporting.
type TaxSummary struct {
	Period        string               `json:"period"`
	TotalIncome   float64              `json:"total_income"`
	TotalExpenses float64              `json:"total_expenses"`
	NetIncome     float64              `json:"net_income"`
	Transactions  []models.Transaction `json:"transactions"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

type Service struct {
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
}

func NewService(users repositories.UserRepository, transactions repositories.TransactionRepository) *Service {
	return &Service{users: users, transactions: transactions}
}

// GetSummary builds the dashboard for one user. Totals cover the recent
// window shown, not all history, so the numbers match what is on screen.
func (s *Service) GetSummary(ctx context.Context, userID uint) (*Summary, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.GetByUser(userID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	income, expenses := sumByDirection(transactions)
	return &Summary{
		Transactions:  transactions,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income - expenses,
		TrustScore:    user.TrustScore,
	}, nil
}

// GetTaxSummary reports income and expenses over the last three months.
func (s *Service) GetTaxSummary(ctx context.Context, userID uint, period string) (*TaxSummary, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, -taxWindowMonths, 0)
	transactions, err := s.transactions.GetByUserSince(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if period == "" {
		period = defaultPeriod(time.Now())
	}

	income, expenses := sumByDirection(transactions)
	return &TaxSummary{
		Period:        period,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income - expenses,
		Transactions:  transactions,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

func sumByDirection(transactions []models.Transaction) (income, expenses float64) {
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeCredit:
			income += tx.Amount
		case models.TransactionTypeDebit:
			amount := tx.Amount
			if amount < 0 {
				amount = -amount
			}
			expenses += amount
		}
	}
	return income, expenses
}

func defaultPeriod(now time.Time) string {
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, now.Year())
}
