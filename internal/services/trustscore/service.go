package trustscore

import (
	"context"
	"fmt"
	"math"
	"time"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
)

const (
	breakdownCachePrefix = "trustscore:breakdown:"
	breakdownCacheTTL    = 10 * time.Minute
	contributionMonths   = 6
)

// Cache is the subset of cache operations the service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service assembles calculator inputs from persisted history and owns the
// stored trust score.
//
// Reconciliation policy for the two update modes: event nudges are
// provisional adjustments applied on top of the stored score; a full
// recompute rebuilds the score from history and overwrites them. Callers
// that need a single source of truth should schedule periodic recomputes.
type Service struct {
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
	alerts       repositories.FraudAlertRepository
	savings      repositories.SavingsRepository
	chamas       repositories.ChamaRepository
	cache        Cache
	calc         *Calculator
}

func NewService(
	users repositories.UserRepository,
	transactions repositories.TransactionRepository,
	alerts repositories.FraudAlertRepository,
	savings repositories.SavingsRepository,
	chamas repositories.ChamaRepository,
	cache Cache,
	calc *Calculator,
) *Service {
	if calc == nil {
		calc = NewCalculator(DefaultWeights())
	}
	return &Service{
		users:        users,
		transactions: transactions,
		alerts:       alerts,
		savings:      savings,
		chamas:       chamas,
		cache:        cache,
		calc:         calc,
	}
}

// GetScore returns the stored trust score.
func (s *Service) GetScore(ctx context.Context, userID uint) (int, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.TrustScore, nil
}

// Recompute rebuilds the score from history, persists it and returns it.
// Any prior event nudges are superseded.
func (s *Service) Recompute(ctx context.Context, userID uint) (int, error) {
	inputs, err := s.assembleInputs(ctx, userID)
	if err != nil {
		return 0, err
	}

	score := s.calc.Score(*inputs)
	if err := s.users.UpdateTrustScore(userID, score); err != nil {
		return 0, fmt.Errorf("failed to persist trust score: %w", err)
	}
	s.invalidateBreakdown(ctx, userID)
	return score, nil
}

// GetBreakdown returns the per-factor breakdown, cached briefly since it is
// read on every profile view.
func (s *Service) GetBreakdown(ctx context.Context, userID uint) (*Breakdown, error) {
	key := breakdownKey(userID)

	var cached Breakdown
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	inputs, err := s.assembleInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := s.calc.Breakdown(*inputs)
	// Cache failures don't fail the read.
	_ = s.cache.SetWithTTL(ctx, key, breakdown, breakdownCacheTTL)
	return &breakdown, nil
}

// ApplyEvent applies an event nudge to the stored score, clamped to the
// valid band, and returns the adjustment.
func (s *Service) ApplyEvent(ctx context.Context, userID uint, event Event) (*Adjustment, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	adjustment := s.calc.Apply(event)
	if adjustment.Delta != 0 {
		next := int(math.Round(float64(user.TrustScore) + adjustment.Delta))
		if next < models.TrustScoreFloor {
			next = models.TrustScoreFloor
		}
		if next > models.TrustScoreCeiling {
			next = models.TrustScoreCeiling
		}
		if err := s.users.UpdateTrustScore(userID, next); err != nil {
			return nil, fmt.Errorf("failed to persist trust score: %w", err)
		}
		s.invalidateBreakdown(ctx, userID)
	}
	return &adjustment, nil
}

func (s *Service) assembleInputs(ctx context.Context, userID uint) (*Inputs, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.GetByUser(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	txRecords := make([]TransactionRecord, 0, len(transactions))
	for _, tx := range transactions {
		txRecords = append(txRecords, TransactionRecord{Amount: tx.Amount, CreatedAt: tx.CreatedAt})
	}

	alerts, err := s.alerts.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fraud alerts: %w", err)
	}
	alertRecords := make([]AlertRecord, 0, len(alerts))
	for _, alert := range alerts {
		alertRecords = append(alertRecords, AlertRecord{
			RiskLevel: alert.RiskLevel,
			Status:    alert.Status,
			CreatedAt: alert.CreatedAt,
		})
	}

	savingsData, err := s.assembleSavings(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.chamas.GetStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chama activity: %w", err)
	}

	return &Inputs{
		Transactions: txRecords,
		FraudAlerts:  alertRecords,
		Savings:      savingsData,
		ChamaActivity: &ChamaActivity{
			ChamasJoined:       stats.ChamasJoined,
			TotalContributions: stats.TotalContributions,
			LeadershipRoles:    stats.LeadershipRoles,
			HelpedMembers:      stats.HelpedMembers,
		},
		AccountAge: time.Since(user.CreatedAt),
		Verifications: &Verifications{
			PhoneVerified:    user.PhoneVerified,
			EmailVerified:    user.EmailVerified,
			IDVerified:       user.IDVerified,
			BusinessVerified: user.BusinessVerified,
		},
	}, nil
}

func (s *Service) assembleSavings(userID uint) (*SavingsData, error) {
	totalSaved, err := s.savings.GetTotalSaved(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings total: %w", err)
	}

	goals, err := s.savings.GetGoals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}
	goalRecords := make([]GoalRecord, 0, len(goals))
	for _, goal := range goals {
		goalRecords = append(goalRecords, GoalRecord{Achieved: goal.Achieved})
	}

	totals, err := s.savings.GetMonthlyTotals(userID, contributionMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly contributions: %w", err)
	}
	monthly := make([]MonthlyContribution, 0, len(totals))
	for _, t := range totals {
		monthly = append(monthly, MonthlyContribution{Month: t.Month, Amount: t.Amount})
	}

	return &SavingsData{
		TotalSaved:           totalSaved,
		Goals:                goalRecords,
		MonthlyContributions: monthly,
	}, nil
}

func (s *Service) invalidateBreakdown(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, breakdownKey(userID))
}

func breakdownKey(userID uint) string {
	return fmt.Sprintf("%s%d", breakdownCachePrefix, userID)
}
