package fraud

import "regexp"

// Scoring weights for the additive scam score. The total is capped at 100.
const (
	scamPatternWeight       = 30
	suspiciousKeywordWeight = 15
	urlWeight               = 25
	urgencyWeight           = 10
	capsRatioWeight         = 10
	exclamationWeight       = 5
	misspellingWeight       = 10
	grammarCap              = 25
	maxScamScore            = 100

	scamThreshold       = 80
	suspiciousThreshold = 50
)

// Config holds the rule tables the detector scores against. The tables are
// immutable once the detector is constructed; swap the config to update the
// rules without redeploying logic.
type Config struct {
	// ScamPatterns each add 30 points when matched. Every matching
	// pattern contributes, not just the first.
	ScamPatterns []*regexp.Regexp
	// SuspiciousKeywords each add 15 points when present.
	SuspiciousKeywords []string
	// SafePatterns describe legitimate transaction confirmations; one must
	// match for the trusted-sender short-circuit to apply.
	SafePatterns []*regexp.Regexp
	// TrustedSenders are known mobile-money, telco and bank identifiers.
	// Matching is substring in either direction to tolerate gateway
	// prefixes. Trusted senders are not unconditionally safe: spoofing is
	// anticipated, so content checks still run.
	TrustedSenders []string
	// MoneyRequestPatterns force at least a suspicious verdict for
	// untrusted senders.
	MoneyRequestPatterns []*regexp.Regexp
	// Misspellings commonly seen in scam messages; each adds 10 points to
	// the grammar subtotal.
	Misspellings []string
	// URLPattern and UrgencyPattern add flat penalties when matched.
	URLPattern     *regexp.Regexp
	UrgencyPattern *regexp.Regexp
	// ScamNumbers matches caller numbers for call analysis; nil means no
	// external list is wired.
	ScamNumbers ScamNumberChecker
}

// DefaultConfig returns the rule tables for Kenyan mobile-money scams.
func DefaultConfig() Config {
	return Config{
		ScamPatterns: []*regexp.Regexp{
			// Prize/lottery scams
			regexp.MustCompile(`(?i)congratulations.*won.*ksh?\s*[\d,]+`),
			regexp.MustCompile(`(?i)you.*have.*won.*prize`),
			regexp.MustCompile(`(?i)lottery.*winner`),
			regexp.MustCompile(`(?i)claim.*prize.*fee`),

			// Fake bank alerts
			regexp.MustCompile(`(?i)account.*will.*be.*closed`),
			regexp.MustCompile(`(?i)verify.*account.*immediately`),
			regexp.MustCompile(`(?i)suspended.*account`),
			regexp.MustCompile(`(?i)click.*link.*verify`),

			// PIN/password requests
			regexp.MustCompile(`(?i)send.*pin`),
			regexp.MustCompile(`(?i)share.*password`),
			regexp.MustCompile(`(?i)confirm.*pin`),
			regexp.MustCompile(`(?i)enter.*secret`),

			// Urgent money requests
			regexp.MustCompile(`(?i)urgent.*send.*money`),
			regexp.MustCompile(`(?i)emergency.*cash`),
			regexp.MustCompile(`(?i)help.*need.*money`),
			regexp.MustCompile(`(?i)send.*ksh.*immediately`),

			// Fake loan offers
			regexp.MustCompile(`(?i)instant.*loan.*approved`),
			regexp.MustCompile(`(?i)loan.*without.*collateral`),
			regexp.MustCompile(`(?i)quick.*cash.*loan`),
			regexp.MustCompile(`(?i)processing.*fee.*required`),
		},
		SuspiciousKeywords: []string{
			"processing fee", "activation fee", "click link", "bit.ly",
			"tinyurl", "urgent", "congratulations", "winner", "prize",
			"verify account", "suspended", "expired", "claim now",
			"send pin", "share password", "confirm details",
		},
		SafePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)confirmed.*ksh.*received`),
			regexp.MustCompile(`(?i)m-pesa.*transaction`),
			regexp.MustCompile(`(?i)balance.*is.*ksh`),
			regexp.MustCompile(`(?i)airtime.*purchase`),
			regexp.MustCompile(`(?i)bill.*payment`),
		},
		TrustedSenders: []string{
			"MPESA", "M-PESA", "SAFARICOM", "AIRTEL", "EQUITEL",
			"KCBMPESA", "COOPBANK", "ABSA", "STANDARDBANK",
		},
		MoneyRequestPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)send.*ksh`),
			regexp.MustCompile(`(?i)need.*money`),
			regexp.MustCompile(`(?i)lend.*me`),
			regexp.MustCompile(`(?i)borrow.*cash`),
		},
		Misspellings:   []string{"recieve", "congradulations", "wining", "proces"},
		URLPattern:     regexp.MustCompile(`(?i)https?://|www\.|\.com|\.co\.ke|bit\.ly`),
		UrgencyPattern: regexp.MustCompile(`(?i)urgent|immediate|asap|now|today|expire`),
		ScamNumbers:    NoopScamNumberChecker{},
	}
}
