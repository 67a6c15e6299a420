package models

import (
	"time"
)

// Fraud alert lifecycle statuses. Alerts start pending and are moved to
// blocked or reviewed by user action; they are never deleted.
const (
	AlertStatusPending  = "pending"
	AlertStatusBlocked  = "blocked"
	AlertStatusReviewed = "reviewed"
	AlertStatusIgnored  = "ignored"
)

type FraudAlert struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	Sender          string     `json:"sender"`
	Message         string     `json:"message"`
	RiskLevel       string     `gorm:"not null" json:"risk_level"`
	Confidence      int        `json:"confidence"`
	Reasons         StringList `gorm:"type:jsonb" json:"reasons"`
	Recommendations StringList `gorm:"type:jsonb" json:"recommendations"`
	Status          string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
