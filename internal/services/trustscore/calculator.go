// Package trustscore computes a credit-bureau-style behavioral score in
// [300, 850] from six weighted factors, and supports small event-driven
// point adjustments between full recomputes.
//
// The calculator is a pure function over its inputs. Malformed history is
// clamped rather than rejected: factor scores are bounded to [0,1] and the
// final score to the [300,850] band.
package trustscore

import (
	"math"
	"time"
)

const (
	baseScore = 300
	maxScore  = 850

	// Savings amount sub-term saturates at KSh 50,000.
	savingsAmountCap = 50000
	// Community contribution sub-term saturates at KSh 100,000.
	communityContributionCap = 100000
	// Account age reaches full score at 12 months.
	fullAgeMonths = 12
)

type Calculator struct {
	weights Weights
}

// NewCalculator creates a calculator with the given factor weights.
func NewCalculator(weights Weights) *Calculator {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Calculator{weights: weights}
}

// Score recomputes the trust score from scratch. Deterministic, no side
// effects.
func (c *Calculator) Score(inputs Inputs) int {
	score := float64(baseScore)

	score += c.consistencyScore(inputs.Transactions) * c.weights.TransactionConsistency * 100
	score += c.fraudAvoidanceScore(inputs.FraudAlerts) * c.weights.FraudAvoidance * 100
	score += c.savingsScore(inputs.Savings) * c.weights.SavingsHabits * 100
	score += c.communityScore(inputs.ChamaActivity) * c.weights.CommunityParticipation * 100
	score += c.accountAgeScore(inputs.AccountAge) * c.weights.AccountAge * 100
	score += c.verificationScore(inputs.Verifications) * c.weights.VerificationLevel * 100

	rounded := int(math.Round(score))
	if rounded < baseScore {
		return baseScore
	}
	if rounded > maxScore {
		return maxScore
	}
	return rounded
}

// Breakdown returns every factor score with its weight, for explaining the
// score to the user.
func (c *Calculator) Breakdown(inputs Inputs) Breakdown {
	return Breakdown{
		TransactionConsistency: Factor{
			Score:       c.consistencyScore(inputs.Transactions),
			Weight:      c.weights.TransactionConsistency,
			Description: "Regular and consistent transaction patterns",
		},
		FraudAvoidance: Factor{
			Score:       c.fraudAvoidanceScore(inputs.FraudAlerts),
			Weight:      c.weights.FraudAvoidance,
			Description: "Successfully avoiding and reporting fraud",
		},
		SavingsHabits: Factor{
			Score:       c.savingsScore(inputs.Savings),
			Weight:      c.weights.SavingsHabits,
			Description: "Regular savings and goal achievement",
		},
		CommunityParticipation: Factor{
			Score:       c.communityScore(inputs.ChamaActivity),
			Weight:      c.weights.CommunityParticipation,
			Description: "Active participation in community savings",
		},
		AccountAge: Factor{
			Score:       c.accountAgeScore(inputs.AccountAge),
			Weight:      c.weights.AccountAge,
			Description: "Length of time using Tajiri",
		},
		VerificationLevel: Factor{
			Score:       c.verificationScore(inputs.Verifications),
			Weight:      c.weights.VerificationLevel,
			Description: "Identity and business verification status",
		},
	}
}

// consistencyScore rewards low month-to-month variability in transaction
// volume. Sparse histories get optimistic defaults rather than penalties.
func (c *Calculator) consistencyScore(transactions []TransactionRecord) float64 {
	if len(transactions) < 5 {
		return 0.3
	}

	monthly := map[string]float64{}
	for _, tx := range transactions {
		month := tx.CreatedAt.Format("2006-01")
		monthly[month] += math.Abs(tx.Amount)
	}

	if len(monthly) < 2 {
		return 0.4
	}

	var sum float64
	for _, total := range monthly {
		sum += total
	}
	mean := sum / float64(len(monthly))
	if mean == 0 {
		return 0.4
	}

	var variance float64
	for _, total := range monthly {
		variance += (total - mean) * (total - mean)
	}
	variance /= float64(len(monthly))

	cv := math.Sqrt(variance) / mean
	return clamp01(1 - cv/2)
}

// fraudAvoidanceScore looks at the last three months of alerts. Falling for
// a scam (a scam alert left ignored) costs 0.2 per incident off a 0.8 base;
// successfully avoiding scams scores a full 1.0.
func (c *Calculator) fraudAvoidanceScore(alerts []AlertRecord) float64 {
	if len(alerts) == 0 {
		return 1.0
	}

	threeMonthsAgo := time.Now().AddDate(0, -3, 0)
	scamAlerts := 0
	fellFor := 0
	for _, alert := range alerts {
		if !alert.CreatedAt.After(threeMonthsAgo) {
			continue
		}
		if alert.RiskLevel == "scam" {
			scamAlerts++
			if alert.Status == "ignored" {
				fellFor++
			}
		}
	}

	if fellFor > 0 {
		return clamp01(0.8 - 0.2*float64(fellFor))
	}
	if scamAlerts > 0 {
		return 1.0
	}
	return 0.9
}

// savingsScore blends contribution regularity (0.4), goal achievement (0.4)
// and total saved (0.2, saturating at KSh 50,000).
func (c *Calculator) savingsScore(savings *SavingsData) float64 {
	if savings == nil {
		return 0.2
	}

	score := 0.0

	if len(savings.MonthlyContributions) >= 3 {
		active := 0
		for _, month := range savings.MonthlyContributions {
			if month.Amount > 0 {
				active++
			}
		}
		score += float64(active) / float64(len(savings.MonthlyContributions)) * 0.4
	}

	if len(savings.Goals) > 0 {
		achieved := 0
		for _, goal := range savings.Goals {
			if goal.Achieved {
				achieved++
			}
		}
		score += float64(achieved) / float64(len(savings.Goals)) * 0.4
	}

	if savings.TotalSaved > 0 {
		score += 0.2 * math.Min(1, savings.TotalSaved/savingsAmountCap)
	}

	return clamp01(score)
}

// communityScore blends chamas joined (up to 0.5), contribution volume (up
// to 0.3, saturating at KSh 100,000) and leadership/helping bonuses.
func (c *Calculator) communityScore(activity *ChamaActivity) float64 {
	if activity == nil {
		return 0.1
	}

	score := 0.0
	if activity.ChamasJoined > 0 {
		score += math.Min(0.5, float64(activity.ChamasJoined)*0.2)
	}
	if activity.TotalContributions > 0 {
		score += math.Min(0.3, activity.TotalContributions/communityContributionCap)
	}
	if activity.LeadershipRoles > 0 {
		score += 0.1
	}
	if activity.HelpedMembers > 0 {
		score += 0.1
	}

	return clamp01(score)
}

// accountAgeScore ramps linearly to full score at 12 months.
func (c *Calculator) accountAgeScore(age time.Duration) float64 {
	if age <= 0 {
		return 0
	}
	months := age.Hours() / (30 * 24)
	return clamp01(months / fullAgeMonths)
}

func (c *Calculator) verificationScore(v *Verifications) float64 {
	if v == nil {
		return 0
	}

	score := 0.0
	if v.PhoneVerified {
		score += 0.3
	}
	if v.EmailVerified {
		score += 0.2
	}
	if v.IDVerified {
		score += 0.3
	}
	if v.BusinessVerified {
		score += 0.2
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
