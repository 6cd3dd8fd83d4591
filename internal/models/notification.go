package models

import "time"

// Notification types
const (
	NotificationTypeTransaction  = "transaction"
	NotificationTypeSubscription = "subscription"
	NotificationTypeBill         = "bill"
	NotificationTypeSecurity     = "security"
	NotificationTypeAccount      = "account"
)

// Notification is advisory only; it is never required for ledger correctness.
// Icon and Color are presentation hints for the client.
type Notification struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"`
	Type      string `gorm:"not null"`
	Icon      string
	Color     string
	Read      bool `gorm:"default:false"`
	Timestamp time.Time
}
