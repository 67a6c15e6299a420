package trustscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func monthsAgo(n int) time.Time {
	return time.Now().AddDate(0, -n, 0)
}

func TestCalculator_Score_Bounds(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	inputs := []Inputs{
		{},
		{
			Transactions: []TransactionRecord{
				{Amount: 100, CreatedAt: monthsAgo(1)},
				{Amount: 50000, CreatedAt: monthsAgo(2)},
			},
		},
		{
			Transactions: consistentHistory(),
			Savings: &SavingsData{
				TotalSaved: 1e9,
				Goals:      []GoalRecord{{Achieved: true}},
				MonthlyContributions: []MonthlyContribution{
					{Month: "2026-05", Amount: 100},
					{Month: "2026-06", Amount: 100},
					{Month: "2026-07", Amount: 100},
				},
			},
			ChamaActivity: &ChamaActivity{ChamasJoined: 50, TotalContributions: 1e9, LeadershipRoles: 3, HelpedMembers: 9},
			AccountAge:    10 * 365 * 24 * time.Hour,
			Verifications: &Verifications{true, true, true, true},
		},
		{
			// Malformed history: negative amounts should clamp, not error.
			Transactions: []TransactionRecord{
				{Amount: -500, CreatedAt: monthsAgo(1)},
				{Amount: -500, CreatedAt: monthsAgo(1)},
				{Amount: -500, CreatedAt: monthsAgo(2)},
				{Amount: -500, CreatedAt: monthsAgo(2)},
				{Amount: -500, CreatedAt: monthsAgo(3)},
			},
			Savings: &SavingsData{TotalSaved: -1},
		},
	}

	for _, in := range inputs {
		score := c.Score(in)
		assert.GreaterOrEqual(t, score, 300)
		assert.LessOrEqual(t, score, 850)
	}
}

// onDay builds a fixed calendar date; consistency grouping is by month and
// must not depend on when the test runs.
func onDay(month time.Month) time.Time {
	return time.Date(2026, month, 15, 12, 0, 0, 0, time.UTC)
}

// consistentHistory returns identical monthly volumes, the best possible
// consistency signal.
func consistentHistory() []TransactionRecord {
	var records []TransactionRecord
	for month := time.January; month <= time.June; month++ {
		records = append(records,
			TransactionRecord{Amount: 1000, CreatedAt: onDay(month)},
			TransactionRecord{Amount: 2000, CreatedAt: onDay(month)},
		)
	}
	return records
}

func TestCalculator_Score_NewAccountFloor(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	// All-empty inputs with the optional sections present but zeroed:
	// 300 + 0.3*0.25*100 (consistency default) + 1.0*0.20*100 (no alerts)
	// = 327.5, rounded half away from zero.
	score := c.Score(Inputs{
		Savings:       &SavingsData{},
		ChamaActivity: &ChamaActivity{},
		Verifications: &Verifications{},
	})
	assert.Equal(t, 328, score)

	// With the optional sections absent the neutral defaults apply
	// (savings 0.2, community 0.1): 327.5 + 4 + 1.5 = 333.
	assert.Equal(t, 333, c.Score(Inputs{}))
}

func TestCalculator_ConsistencyScore(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	t.Run("insufficient data", func(t *testing.T) {
		assert.Equal(t, 0.3, c.consistencyScore(nil))
		assert.Equal(t, 0.3, c.consistencyScore([]TransactionRecord{{Amount: 10}}))
	})

	t.Run("single month", func(t *testing.T) {
		now := time.Now()
		records := []TransactionRecord{
			{Amount: 10, CreatedAt: now}, {Amount: 10, CreatedAt: now},
			{Amount: 10, CreatedAt: now}, {Amount: 10, CreatedAt: now},
			{Amount: 10, CreatedAt: now},
		}
		assert.Equal(t, 0.4, c.consistencyScore(records))
	})

	t.Run("steady volumes score higher than erratic ones", func(t *testing.T) {
		steady := c.consistencyScore(consistentHistory())

		erratic := c.consistencyScore([]TransactionRecord{
			{Amount: 100, CreatedAt: onDay(time.January)},
			{Amount: 90000, CreatedAt: onDay(time.February)},
			{Amount: 50, CreatedAt: onDay(time.March)},
			{Amount: 70000, CreatedAt: onDay(time.April)},
			{Amount: 10, CreatedAt: onDay(time.May)},
		})

		assert.Greater(t, steady, erratic)
		assert.InDelta(t, 1.0, steady, 1e-9)
	})
}

func TestCalculator_FraudAvoidanceScore(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	t.Run("no history is a perfect score", func(t *testing.T) {
		assert.Equal(t, 1.0, c.fraudAvoidanceScore(nil))
	})

	t.Run("avoided scams are rewarded", func(t *testing.T) {
		alerts := []AlertRecord{
			{RiskLevel: "scam", Status: "blocked", CreatedAt: monthsAgo(1)},
			{RiskLevel: "scam", Status: "reviewed", CreatedAt: monthsAgo(2)},
		}
		assert.Equal(t, 1.0, c.fraudAvoidanceScore(alerts))
	})

	t.Run("falling for scams is penalized per incident", func(t *testing.T) {
		alerts := []AlertRecord{
			{RiskLevel: "scam", Status: "ignored", CreatedAt: monthsAgo(1)},
		}
		assert.InDelta(t, 0.6, c.fraudAvoidanceScore(alerts), 1e-9)

		alerts = append(alerts, AlertRecord{RiskLevel: "scam", Status: "ignored", CreatedAt: monthsAgo(2)})
		assert.InDelta(t, 0.4, c.fraudAvoidanceScore(alerts), 1e-9)
	})

	t.Run("old incidents age out", func(t *testing.T) {
		alerts := []AlertRecord{
			{RiskLevel: "scam", Status: "ignored", CreatedAt: monthsAgo(6)},
		}
		assert.Equal(t, 0.9, c.fraudAvoidanceScore(alerts))
	})

	t.Run("only suspicious alerts recently is neutral", func(t *testing.T) {
		alerts := []AlertRecord{
			{RiskLevel: "suspicious", Status: "pending", CreatedAt: monthsAgo(1)},
		}
		assert.Equal(t, 0.9, c.fraudAvoidanceScore(alerts))
	})
}

func TestCalculator_SavingsScore(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	t.Run("nil savings", func(t *testing.T) {
		assert.Equal(t, 0.2, c.savingsScore(nil))
	})

	t.Run("full marks", func(t *testing.T) {
		savings := &SavingsData{
			TotalSaved: 50000,
			Goals:      []GoalRecord{{Achieved: true}, {Achieved: true}},
			MonthlyContributions: []MonthlyContribution{
				{Month: "2026-05", Amount: 500},
				{Month: "2026-06", Amount: 500},
				{Month: "2026-07", Amount: 500},
			},
		}
		assert.InDelta(t, 1.0, c.savingsScore(savings), 1e-9)
	})

	t.Run("contribution term needs three months of data", func(t *testing.T) {
		savings := &SavingsData{
			MonthlyContributions: []MonthlyContribution{
				{Month: "2026-06", Amount: 500},
				{Month: "2026-07", Amount: 500},
			},
		}
		assert.Equal(t, 0.0, c.savingsScore(savings))
	})

	t.Run("amount term saturates at fifty thousand", func(t *testing.T) {
		assert.InDelta(t, 0.1, c.savingsScore(&SavingsData{TotalSaved: 25000}), 1e-9)
		assert.InDelta(t, 0.2, c.savingsScore(&SavingsData{TotalSaved: 500000}), 1e-9)
	})
}

func TestCalculator_CommunityScore(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	assert.Equal(t, 0.1, c.communityScore(nil))
	assert.Equal(t, 0.0, c.communityScore(&ChamaActivity{}))

	full := c.communityScore(&ChamaActivity{
		ChamasJoined:       3,
		TotalContributions: 100000,
		LeadershipRoles:    1,
		HelpedMembers:      2,
	})
	assert.InDelta(t, 1.0, full, 1e-9)

	// Joined chamas saturate at 0.5.
	assert.InDelta(t, 0.5, c.communityScore(&ChamaActivity{ChamasJoined: 10}), 1e-9)
}

func TestCalculator_AccountAgeScore(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	assert.Equal(t, 0.0, c.accountAgeScore(0))
	assert.InDelta(t, 0.5, c.accountAgeScore(6*30*24*time.Hour), 1e-9)
	assert.Equal(t, 1.0, c.accountAgeScore(24*30*24*time.Hour))
}

func TestCalculator_VerificationScore_Monotonic(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	assert.Equal(t, 0.0, c.verificationScore(nil))
	assert.Equal(t, 0.0, c.verificationScore(&Verifications{}))

	// Turning on each flag never decreases the sub-score.
	prev := 0.0
	steps := []Verifications{
		{PhoneVerified: true},
		{PhoneVerified: true, EmailVerified: true},
		{PhoneVerified: true, EmailVerified: true, IDVerified: true},
		{PhoneVerified: true, EmailVerified: true, IDVerified: true, BusinessVerified: true},
	}
	for _, v := range steps {
		v := v
		score := c.verificationScore(&v)
		assert.Greater(t, score, prev)
		prev = score
	}
	assert.InDelta(t, 1.0, prev, 1e-9)
}

func TestCalculator_Apply_Events(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	tests := []struct {
		name  string
		event Event
		delta float64
	}{
		{"small transaction", TransactionEvent{Amount: 500}, 0.5},
		{"transaction boost caps at two", TransactionEvent{Amount: 100000}, 2},
		{"avoided scam", FraudReportEvent{WasScam: true, UserAction: "avoided"}, 5},
		{"fell for scam", FraudReportEvent{WasScam: true, UserAction: "fell_for"}, -10},
		{"reported false alarm", FraudReportEvent{WasScam: false, UserAction: "reported"}, 2},
		{"ambiguous report", FraudReportEvent{WasScam: false, UserAction: "avoided"}, 0},
		{"achieved goal", SavingsGoalEvent{Achieved: true, Amount: 25000}, 5},
		{"goal boost caps at ten", SavingsGoalEvent{Achieved: true, Amount: 1e7}, 10},
		{"unachieved goal", SavingsGoalEvent{Achieved: false, Amount: 25000}, 0},
		{"chama join", ChamaJoinEvent{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adjustment := c.Apply(tt.event)
			assert.Equal(t, tt.delta, adjustment.Delta)
			assert.NotEmpty(t, adjustment.Message)
		})
	}
}
