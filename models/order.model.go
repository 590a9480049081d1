package models

import "gorm.io/gorm"

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order is a purchase of one or more courses by a user
type Order struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"index;not null"`
	TotalAmount float64 `json:"total_amount" gorm:"default:0"`
	Status      string  `json:"status" gorm:"default:'pending'"` // pending, completed, cancelled
	IsDeleted   bool    `gorm:"default:false"`
}

// OrderItem records the price paid for a course at purchase time,
// independent of the course's current price.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"index;not null"`
	CourseID  uint    `json:"course_id" gorm:"index;not null"`
	Price     float64 `json:"price"`
	IsDeleted bool    `gorm:"default:false"`
}
