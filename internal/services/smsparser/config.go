package smsparser

import "regexp"

// directionKeywords maps an ordered set of phrases to a transaction
// direction. Order matters: the first category containing a matching phrase
// wins.
type directionKeywords struct {
	Direction string
	Keywords  []string
}

// saleCategory maps keywords to a business sale category, checked in order.
type saleCategory struct {
	Name     string
	Keywords []string
}

// Config holds the pattern tables the parser matches against. The tables are
// data, not logic: they can be replaced at construction to support new
// providers or message formats without touching the parser.
type Config struct {
	// AmountPatterns are tried in order against the lowercased message;
	// each must have exactly one capture group for the amount. The first
	// match wins.
	AmountPatterns []*regexp.Regexp
	// FallbackAmountPattern is tried when no AmountPattern matches.
	FallbackAmountPattern *regexp.Regexp
	// DirectionTable classifies the message by keyword, in declaration
	// order. The "received" category maps to credit, everything else to
	// debit.
	DirectionTable []directionKeywords
	// NamePattern extracts a capitalized counterparty name following
	// from/to/by. Matched against the raw message so capitalization is
	// meaningful.
	NamePattern *regexp.Regexp
	// PhonePattern extracts a counterparty phone number.
	PhonePattern *regexp.Regexp
	// ReferencePattern extracts a 10-character uppercase transaction code.
	ReferencePattern *regexp.Regexp
	// SaleKeywords mark a message as a business sale.
	SaleKeywords []string
	// SaleCategories categorize a business sale, in declaration order.
	SaleCategories []saleCategory
}

// DefaultConfig returns the pattern tables for Kenyan mobile-money
// confirmation messages.
func DefaultConfig() Config {
	return Config{
		AmountPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)confirmed\.?\s*you\s*have\s*received\s*ksh?\s*([\d,]+\.?\d*)`),
			regexp.MustCompile(`(?i)confirmed\.?\s*ksh?\s*([\d,]+\.?\d*)\s*sent\s*to`),
			regexp.MustCompile(`(?i)confirmed\.?\s*ksh?\s*([\d,]+\.?\d*)\s*paid\s*to`),
			regexp.MustCompile(`(?i)balance\s*is\s*ksh?\s*([\d,]+\.?\d*)`),
			regexp.MustCompile(`(?i)new\s*m-pesa\s*balance\s*is\s*ksh?\s*([\d,]+\.?\d*)`),
		},
		FallbackAmountPattern: regexp.MustCompile(`(?i)ksh?\s*([\d,]+\.?\d*)`),
		DirectionTable: []directionKeywords{
			{Direction: "received", Keywords: []string{"received", "from", "sent by"}},
			{Direction: "sent", Keywords: []string{"sent to", "paid to", "transferred to"}},
			{Direction: "withdrawal", Keywords: []string{"withdraw", "cash withdrawal"}},
			{Direction: "deposit", Keywords: []string{"deposit", "top up", "airtime"}},
		},
		NamePattern:      regexp.MustCompile(`(?:from|to|by)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		PhonePattern:     regexp.MustCompile(`(\+?254\d{9}|\d{10})`),
		ReferencePattern: regexp.MustCompile(`([A-Z0-9]{10})`),
		SaleKeywords:     []string{"sale", "sold", "payment for", "business"},
		SaleCategories: []saleCategory{
			{Name: "airtime", Keywords: []string{"airtime", "credit", "bundles"}},
			{Name: "retail", Keywords: []string{"shop", "store", "goods"}},
			{Name: "services", Keywords: []string{"service", "repair", "consultation"}},
			{Name: "food", Keywords: []string{"food", "restaurant", "meal"}},
		},
	}
}
