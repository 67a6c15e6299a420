package fraud

// RiskLevel classifies a message or call, ordered by severity. Unknown is a
// failure fallback, not a severity level.
type RiskLevel string

const (
	RiskSafe       RiskLevel = "safe"
	RiskSuspicious RiskLevel = "suspicious"
	RiskScam       RiskLevel = "scam"
	RiskUnknown    RiskLevel = "unknown"
)

// Analysis is the verdict for a single message or call. Confidence is always
// populated; Reasons form the evidence trail surfaced to the user.
type Analysis struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Confidence      int       `json:"confidence"`
	Reasons         []string  `json:"reasons"`
	Recommendations []string  `json:"recommendations"`
}

// Report acknowledges a community fraud report.
type Report struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// UserAction describes what the user did with a flagged message.
type UserAction string

const (
	ActionAvoided  UserAction = "avoided"
	ActionFellFor  UserAction = "fell_for"
	ActionReported UserAction = "reported"
)

// ScamNumberChecker matches caller numbers against an externally managed
// list of reported scam numbers. The production list lives outside this
// service; NoopScamNumberChecker stands in until one is wired.
type ScamNumberChecker interface {
	IsKnownScamNumber(number string) bool
}

// NoopScamNumberChecker never matches.
type NoopScamNumberChecker struct{}

func (NoopScamNumberChecker) IsKnownScamNumber(string) bool { return false }
