package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeCredit  = "credit"
	TransactionTypeDebit   = "debit"
	TransactionTypeUnknown = "unknown"
)

// Transaction sources
const (
	SourceSMSParsed = "sms_parsed"
	SourceManual    = "manual"
)

type Transaction struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Type        string  `gorm:"not null" json:"type"`
	Party       string  `json:"party"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
	SMSContent  string  `json:"sms_content,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
