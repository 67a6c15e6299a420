package smsparser

// Transaction directions as extracted from message text.
const (
	DirectionCredit  = "credit"
	DirectionDebit   = "debit"
	DirectionUnknown = "unknown"
)

// Source tag stamped on every parsed transaction.
const SourceSMSParsed = "sms_parsed"

// ParsedTransaction is the structured result of parsing a mobile-money SMS.
// It is handed to the caller for persistence; the parser keeps no state.
type ParsedTransaction struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Party       string  `json:"party"`
	Reference   string  `json:"reference,omitempty"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}

// ParsedSale is a business sale extracted from an SMS, categorized for
// bookkeeping.
type ParsedSale struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
}
