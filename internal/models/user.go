package models

import (
	"gorm.io/gorm"
)

// Trust score bounds shared across the application.
const (
	TrustScoreFloor   = 300
	TrustScoreCeiling = 850
)

type User struct {
	gorm.Model
	Phone            string `gorm:"uniqueIndex;not null" json:"phone"`
	Name             string `gorm:"not null" json:"name"`
	Email            string `json:"email"`
	TrustScore       int    `gorm:"default:300" json:"trust_score"`
	PhoneVerified    bool   `gorm:"default:false" json:"phone_verified"`
	EmailVerified    bool   `gorm:"default:false" json:"email_verified"`
	IDVerified       bool   `gorm:"default:false" json:"id_verified"`
	BusinessVerified bool   `gorm:"default:false" json:"business_verified"`
}
