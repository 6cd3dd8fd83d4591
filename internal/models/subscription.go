package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is created atomically with a balance debit and a
// subscription-typed transaction record.
type Subscription struct {
	ID          uint            `gorm:"primarykey"`
	UserID      uint            `gorm:"index;not null"`
	ServiceID   string          `gorm:"not null"`
	ServiceName string          `gorm:"not null"`
	PlanID      string          `gorm:"not null"`
	PlanName    string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate   time.Time
	Status      string `gorm:"default:'active'"`
	AutoRenew   bool   `gorm:"default:true"`
}
