package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscountCode is a percentage discount applied at checkout
type DiscountCode struct {
	gorm.Model
	Code            string     `json:"code" gorm:"unique;not null"`
	DiscountPercent float64    `json:"discount_percent"`
	Active          bool       `json:"active" gorm:"default:true"`
	ExpiresAt       *time.Time `json:"expires_at"`
	IsDeleted       bool       `gorm:"default:false"`
}
