package trustscore

import "time"

// TransactionRecord is the slice of transaction history the calculator
// consumes: amount and when it happened.
type TransactionRecord struct {
	Amount    float64
	CreatedAt time.Time
}

// AlertRecord is the slice of fraud-alert history the calculator consumes.
type AlertRecord struct {
	RiskLevel string
	Status    string
	CreatedAt time.Time
}

// MonthlyContribution is one month of savings activity.
type MonthlyContribution struct {
	Month  string
	Amount float64
}

// GoalRecord is one savings goal and whether it was achieved.
type GoalRecord struct {
	Achieved bool
}

// SavingsData summarizes a user's savings behavior.
type SavingsData struct {
	TotalSaved           float64
	Goals                []GoalRecord
	MonthlyContributions []MonthlyContribution
}

// ChamaActivity summarizes a user's community savings participation.
type ChamaActivity struct {
	ChamasJoined       int
	TotalContributions float64
	LeadershipRoles    int
	HelpedMembers      int
}

// Verifications holds the user's identity verification flags.
type Verifications struct {
	PhoneVerified    bool
	EmailVerified    bool
	IDVerified       bool
	BusinessVerified bool
}

// Inputs is everything the calculator needs for a full recompute. It is
// assembled by the caller from persisted history; the calculator stores
// nothing.
type Inputs struct {
	Transactions  []TransactionRecord
	FraudAlerts   []AlertRecord
	Savings       *SavingsData
	ChamaActivity *ChamaActivity
	AccountAge    time.Duration
	Verifications *Verifications
}

// Weights are the per-factor weights of the score. They sum to 1.0.
type Weights struct {
	TransactionConsistency float64
	FraudAvoidance         float64
	SavingsHabits          float64
	CommunityParticipation float64
	AccountAge             float64
	VerificationLevel      float64
}

// DefaultWeights returns the production factor weights.
func DefaultWeights() Weights {
	return Weights{
		TransactionConsistency: 0.25,
		FraudAvoidance:         0.20,
		SavingsHabits:          0.20,
		CommunityParticipation: 0.15,
		AccountAge:             0.10,
		VerificationLevel:      0.10,
	}
}

// Factor is one component of the score breakdown, exposed for UI
// transparency.
type Factor struct {
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// Breakdown lists every factor with its raw score and weight.
type Breakdown struct {
	TransactionConsistency Factor `json:"transaction_consistency"`
	FraudAvoidance         Factor `json:"fraud_avoidance"`
	SavingsHabits          Factor `json:"savings_habits"`
	CommunityParticipation Factor `json:"community_participation"`
	AccountAge             Factor `json:"account_age"`
	VerificationLevel      Factor `json:"verification_level"`
}
