// Package savings manages personal savings goals and contributions.
package savings

import (
	"context"
	"errors"
	"fmt"

	"tajiri/internal/models"
	"tajiri/internal/repositories"
	"tajiri/internal/services/trustscore"
)

// ErrGoalOwnership is returned when a contribution targets someone else's
// goal.
var ErrGoalOwnership = errors.New("savings goal belongs to another user")

// TrustNudger applies incremental trust-score adjustments.
type TrustNudger interface {
	ApplyEvent(ctx context.Context, userID uint, event trustscore.Event) (*trustscore.Adjustment, error)
}

// ContributionResult reports a recorded contribution and whether it completed
// a goal.
type ContributionResult struct {
	Goal         *models.SavingsGoal `json:"goal,omitempty"`
	GoalAchieved bool                `json:"goal_achieved"`
}

type Service struct {
	savings repositories.SavingsRepository
	trust   TrustNudger
}

func NewService(savings repositories.SavingsRepository, trust TrustNudger) *Service {
	return &Service{savings: savings, trust: trust}
}

// CreateGoal opens a new savings goal.
func (s *Service) CreateGoal(ctx context.Context, userID uint, name string, targetAmount float64) (*models.SavingsGoal, error) {
	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
	}
	if err := s.savings.CreateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// ListGoals returns a user's savings goals.
func (s *Service) ListGoals(ctx context.Context, userID uint) ([]models.SavingsGoal, error) {
	return s.savings.GetGoals(userID)
}

// Contribute records a contribution, optionally against a goal. A
// contribution that pushes a goal past its target marks it achieved and
// rewards the trust score once; further contributions to an achieved goal
// are recorded without another reward.
func (s *Service) Contribute(ctx context.Context, userID uint, goalID *uint, amount float64) (*ContributionResult, error) {
	if amount <= 0 {
		return nil, errors.New("contribution amount must be positive")
	}

	contribution := &models.SavingsContribution{
		UserID: userID,
		GoalID: goalID,
		Amount: amount,
	}
	if err := s.savings.CreateContribution(contribution); err != nil {
		return nil, err
	}

	result := &ContributionResult{}
	if goalID == nil {
		return result, nil
	}

	goal, err := s.savings.GetGoal(*goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalOwnership
	}

	alreadyAchieved := goal.Achieved
	goal.SavedAmount += amount
	if goal.SavedAmount >= goal.TargetAmount {
		goal.Achieved = true
	}
	if err := s.savings.UpdateGoal(goal); err != nil {
		return nil, err
	}

	result.Goal = goal
	if goal.Achieved && !alreadyAchieved {
		result.GoalAchieved = true
		if err := s.rewardAchievement(ctx, userID, goal); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// AchieveGoal marks a goal achieved ahead of its target, for goals completed
// outside tracked contributions. Idempotent; the reward applies once.
func (s *Service) AchieveGoal(ctx context.Context, userID, goalID uint) (*models.SavingsGoal, error) {
	goal, err := s.savings.GetGoal(goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrGoalOwnership
	}
	if goal.Achieved {
		return goal, nil
	}

	goal.Achieved = true
	if err := s.savings.UpdateGoal(goal); err != nil {
		return nil, err
	}
	if err := s.rewardAchievement(ctx, userID, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *Service) rewardAchievement(ctx context.Context, userID uint, goal *models.SavingsGoal) error {
	event := trustscore.SavingsGoalEvent{Achieved: true, Amount: goal.TargetAmount}
	if _, err := s.trust.ApplyEvent(ctx, userID, event); err != nil {
		return fmt.Errorf("failed to adjust trust score: %w", err)
	}
	return nil
}
