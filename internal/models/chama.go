package models

import (
	"time"
)

// Chama member roles
const (
	ChamaRoleMember = "member"
	ChamaRoleLeader = "leader"
)

// ChamaGroup is an informal group-savings association.
type ChamaGroup struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	Description       string  `json:"description"`
	TotalSavings      float64 `gorm:"default:0" json:"total_savings"`
	MonthlyTarget     float64 `json:"monthly_target"`
	BlockchainAddress string  `json:"blockchain_address"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ChamaMember struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	ChamaID       uint    `gorm:"not null;index" json:"chama_id"`
	UserID        uint    `gorm:"not null;index" json:"user_id"`
	Contribution  float64 `gorm:"default:0" json:"contribution"`
	Role          string  `gorm:"default:'member'" json:"role"`
	HelpedMembers int     `gorm:"default:0" json:"helped_members"`
	JoinedAt      time.Time
}
