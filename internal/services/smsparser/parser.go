// Package smsparser extracts structured transactions from mobile-money
// confirmation messages.
//
// The parser is pure and stateless: it holds only immutable pattern tables
// injected at construction, so a single instance is safe for concurrent use.
// Parsing never fails loudly; text with no recognizable monetary amount
// yields nil rather than a zero-amount transaction.
package smsparser

import (
	"fmt"
	"strconv"
	"strings"
)

type Parser struct {
	cfg Config
}

// NewParser creates a parser using the given pattern tables.
func NewParser(cfg Config) *Parser {
	if len(cfg.AmountPatterns) == 0 {
		cfg = DefaultConfig()
	}
	return &Parser{cfg: cfg}
}

// Parse extracts a transaction from an SMS body. It returns nil when the
// message contains no recognizable amount.
func (p *Parser) Parse(smsContent string) *ParsedTransaction {
	clean := strings.ToLower(strings.TrimSpace(smsContent))

	amount, ok := p.extractAmount(clean)
	if !ok {
		return nil
	}

	direction := p.determineDirection(clean)
	party := p.extractParty(smsContent, clean)
	reference := p.extractReference(smsContent)

	return &ParsedTransaction{
		Amount:      amount,
		Type:        direction,
		Party:       party,
		Reference:   reference,
		Description: p.describe(clean, direction, party),
		Source:      SourceSMSParsed,
	}
}

func (p *Parser) extractAmount(clean string) (float64, bool) {
	for _, pattern := range p.cfg.AmountPatterns {
		if m := pattern.FindStringSubmatch(clean); m != nil {
			return parseAmount(m[1])
		}
	}
	if p.cfg.FallbackAmountPattern != nil {
		if m := p.cfg.FallbackAmountPattern.FindStringSubmatch(clean); m != nil {
			return parseAmount(m[1])
		}
	}
	return 0, false
}

func parseAmount(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func (p *Parser) determineDirection(clean string) string {
	for _, category := range p.cfg.DirectionTable {
		for _, keyword := range category.Keywords {
			if strings.Contains(clean, keyword) {
				if category.Direction == "received" {
					return DirectionCredit
				}
				return DirectionDebit
			}
		}
	}

	// Fall back on common mobile-money phrasing.
	if strings.Contains(clean, "received") || strings.Contains(clean, "from") {
		return DirectionCredit
	}
	if strings.Contains(clean, "sent") || strings.Contains(clean, "paid") {
		return DirectionDebit
	}
	return DirectionUnknown
}

// extractParty looks for a capitalized name after from/to/by in the raw
// message, then for a phone number. Raw text is used so the capitalized-name
// pattern carries signal.
func (p *Parser) extractParty(raw, clean string) string {
	if m := p.cfg.NamePattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := p.cfg.PhonePattern.FindStringSubmatch(clean); m != nil {
		return m[1]
	}
	return "Unknown"
}

func (p *Parser) extractReference(raw string) string {
	if m := p.cfg.ReferencePattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

func (p *Parser) describe(clean, direction, party string) string {
	switch direction {
	case DirectionCredit:
		return fmt.Sprintf("Payment received from %s", party)
	case DirectionDebit:
		switch {
		case strings.Contains(clean, "airtime"):
			return "Airtime purchase"
		case strings.Contains(clean, "withdraw"):
			return "Cash withdrawal"
		default:
			return fmt.Sprintf("Payment sent to %s", party)
		}
	default:
		return "Transaction processed"
	}
}

// ParseSale extracts a business sale from an SMS. Returns nil when the
// message carries no sale keyword or no amount.
func (p *Parser) ParseSale(smsContent string) *ParsedSale {
	clean := strings.ToLower(strings.TrimSpace(smsContent))

	hasSaleKeyword := false
	for _, keyword := range p.cfg.SaleKeywords {
		if strings.Contains(clean, keyword) {
			hasSaleKeyword = true
			break
		}
	}
	if !hasSaleKeyword {
		return nil
	}

	amount, ok := p.extractAmount(clean)
	if !ok {
		return nil
	}

	return &ParsedSale{
		Amount:   amount,
		Category: p.categorizeSale(clean),
		Source:   SourceSMSParsed,
	}
}

func (p *Parser) categorizeSale(clean string) string {
	for _, category := range p.cfg.SaleCategories {
		for _, keyword := range category.Keywords {
			if strings.Contains(clean, keyword) {
				return category.Name
			}
		}
	}
	return "general"
}
