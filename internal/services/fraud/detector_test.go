package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker struct{ numbers map[string]bool }

func (c staticChecker) IsKnownScamNumber(number string) bool { return c.numbers[number] }

func TestDetector_AnalyzeSMS_ScamMessage(t *testing.T) {
	d := NewDetector(DefaultConfig())

	analysis := d.AnalyzeSMS(
		"Congratulations! You have won Ksh 50,000. Send Ksh 500 processing fee to claim http://bit.ly/x",
		"+254700000000",
	)

	assert.Equal(t, RiskScam, analysis.RiskLevel)
	assert.GreaterOrEqual(t, analysis.Confidence, 80)
	assert.NotEmpty(t, analysis.Reasons)
	assert.NotEmpty(t, analysis.Recommendations)
}

func TestDetector_AnalyzeSMS_TrustedSender(t *testing.T) {
	d := NewDetector(DefaultConfig())

	analysis := d.AnalyzeSMS(
		"Confirmed you have received Ksh 1,200 from John. M-Pesa balance is Ksh 3,400",
		"MPESA",
	)

	assert.Equal(t, RiskSafe, analysis.RiskLevel)
	assert.Equal(t, 95, analysis.Confidence)
	assert.Equal(t, []string{"Trusted sender with legitimate transaction pattern"}, analysis.Reasons)
	assert.Empty(t, analysis.Recommendations)
}

func TestDetector_AnalyzeSMS_SpoofedTrustedSender(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// Trusted sender name, scam content: the short-circuit must not apply.
	analysis := d.AnalyzeSMS(
		"Your account will be closed! Verify account immediately by sending your PIN",
		"MPESA",
	)

	assert.NotEqual(t, RiskSafe, analysis.RiskLevel)
}

func TestDetector_AnalyzeSMS_Table(t *testing.T) {
	d := NewDetector(DefaultConfig())

	tests := []struct {
		name      string
		sms       string
		sender    string
		wantLevel RiskLevel
	}{
		{
			name:      "plain message from unknown sender",
			sms:       "See you at the meeting tomorrow",
			sender:    "+254711111111",
			wantLevel: RiskSafe,
		},
		{
			name:      "money request from unknown sender",
			sms:       "Please send ksh 2000, I will pay you back",
			sender:    "+254722222222",
			wantLevel: RiskSuspicious,
		},
		{
			name:      "fake loan offer",
			sms:       "Instant loan approved! Quick cash loan without collateral. Processing fee required. Claim now!",
			sender:    "LOANS4U",
			wantLevel: RiskScam,
		},
		{
			name:      "urgency plus link only",
			sms:       "Offer expires today, see www.example.com",
			sender:    "PROMO",
			wantLevel: RiskSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := d.AnalyzeSMS(tt.sms, tt.sender)
			assert.Equal(t, tt.wantLevel, analysis.RiskLevel)
			assert.GreaterOrEqual(t, analysis.Confidence, 0)
			assert.LessOrEqual(t, analysis.Confidence, 100)
		})
	}
}

func TestDetector_AnalyzeSMS_MoneyRequestRaisesConfidence(t *testing.T) {
	d := NewDetector(DefaultConfig())

	analysis := d.AnalyzeSMS("Hi, can you lend me some cash? Need money for rent", "+254733333333")

	assert.Equal(t, RiskSuspicious, analysis.RiskLevel)
	assert.GreaterOrEqual(t, analysis.Confidence, 70)
	assert.Contains(t, analysis.Reasons, "Money request from unknown sender")
}

func TestDetector_GrammarPenalty(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// All-caps shouting with stacked exclamations and a stock misspelling.
	penalty := d.grammarPenalty("YOU MUST RECIEVE THIS!! ACT FAST", "you must recieve this!! act fast")
	assert.Equal(t, 25, penalty)

	penalty = d.grammarPenalty("a normal quiet message", "a normal quiet message")
	assert.Equal(t, 0, penalty)
}

func TestDetector_AnalyzeCall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScamNumbers = staticChecker{numbers: map[string]bool{"+254700000001": true}}
	d := NewDetector(cfg)

	t.Run("short reported call", func(t *testing.T) {
		analysis := d.AnalyzeCall("+254712345678", 30, true)
		assert.Equal(t, RiskSuspicious, analysis.RiskLevel)
		assert.Equal(t, 75, analysis.Confidence)
	})

	t.Run("known scam number", func(t *testing.T) {
		analysis := d.AnalyzeCall("+254700000001", 300, false)
		assert.Equal(t, RiskScam, analysis.RiskLevel)
		assert.Equal(t, 90, analysis.Confidence)
	})

	t.Run("unremarkable call", func(t *testing.T) {
		analysis := d.AnalyzeCall("+254712345678", 300, false)
		assert.Equal(t, RiskSafe, analysis.RiskLevel)
	})
}

func TestDetector_ReportFraud(t *testing.T) {
	d := NewDetector(DefaultConfig())

	report := d.ReportFraud(1, "sms_scam", "lottery message")
	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, "reported", report.Status)
}
