package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Name          string `gorm:"not null"`
	Phone         string
	AccountNumber string  `gorm:"uniqueIndex;not null;size:16"` // 16-digit display identifier
	IBAN          string  `gorm:"uniqueIndex;not null"`
	WalletID      *uint   `gorm:"unique;default:null"`
	Wallet        *Wallet `gorm:"foreignKey:WalletID"`
	Status        string  `gorm:"default:'active'"`
	Address       string
	Occupation    string
	DateOfBirth   *time.Time
	KYCVerified   bool `gorm:"default:false"`
	LastLoginAt   time.Time
	TokenVersion  int `gorm:"default:1"`
}

// Disabled reports whether the user may no longer sign in.
func (u *User) Disabled() bool {
	return u.Status == "disabled"
}
