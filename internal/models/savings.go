package models

import (
	"time"
)

type SavingsGoal struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	Name         string  `gorm:"not null" json:"name"`
	TargetAmount float64 `json:"target_amount"`
	SavedAmount  float64 `gorm:"default:0" json:"saved_amount"`
	Achieved     bool    `gorm:"default:false" json:"achieved"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SavingsContribution struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	UserID    uint    `gorm:"not null;index" json:"user_id"`
	GoalID    *uint   `json:"goal_id,omitempty"`
	Amount    float64 `gorm:"not null" json:"amount"`
	CreatedAt time.Time
}
