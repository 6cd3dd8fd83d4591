package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        uint            `gorm:"primarykey"`
	UserID    uint            `gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Currency  string          `gorm:"default:'USD'"`
	Status    string          `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDebit reports whether amount can be taken from the wallet without
// the balance going negative. Enforced again inside the ledger's atomic unit.
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero) && w.Balance.GreaterThanOrEqual(amount)
}
