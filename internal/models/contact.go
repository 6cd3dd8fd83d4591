package models

import "time"

// Contact is an owner-scoped address book row. Name and account number are
// denormalized at add time and are not kept in sync with the target account.
type Contact struct {
	ID            uint   `gorm:"primarykey"`
	OwnerID       uint   `gorm:"uniqueIndex:idx_owner_contact;not null"`
	UserID        uint   `gorm:"uniqueIndex:idx_owner_contact;not null"` // the contact's account
	Name          string `gorm:"not null"`
	AccountNumber string `gorm:"not null;size:16"`
	AddedAt       time.Time
}
