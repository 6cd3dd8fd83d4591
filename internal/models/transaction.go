package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Each committed transfer leg is owned by exactly one
// account; a P2P transfer produces a "sent" record under the sender and a
// "received" record under the receiver. Bill and subscription payments
// produce a single owner-side record.
const (
	TransactionTypeSent         = "sent"
	TransactionTypeReceived     = "received"
	TransactionTypeSubscription = "subscription"
	TransactionTypeBill         = "bill"
)

// TransactionStatusCompleted is the only status ever persisted. Failed
// operations abort before any record is written.
const TransactionStatusCompleted = "completed"

// Transaction is one immutable ledger record. Records are created inside the
// same atomic unit as the balance mutation and never updated or deleted.
type Transaction struct {
	ID          uint            `gorm:"primarykey"`
	OwnerID     uint            `gorm:"index:idx_owner_ts;not null"` // user that owns this leg
	Type        string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string
	// Counterparty is a snapshot taken at transfer time, not a live
	// reference. It does not follow later renames.
	CounterpartyID   *uint
	CounterpartyName string
	Reference        string    `gorm:"index"` // shared by both legs of a transfer
	Timestamp        time.Time `gorm:"index:idx_owner_ts;not null"`
	Status           string    `gorm:"not null;default:'completed'"`
	CreatedAt        time.Time
}

// Validate enforces the per-variant required fields at the store boundary.
func (t *Transaction) Validate() error {
	if t.OwnerID == 0 {
		return fmt.Errorf("transaction owner is required")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive")
	}
	if t.Timestamp.IsZero() {
		return fmt.Errorf("transaction timestamp is required")
	}
	switch t.Type {
	case TransactionTypeSent, TransactionTypeReceived:
		if t.CounterpartyID == nil || *t.CounterpartyID == 0 {
			return fmt.Errorf("%s transaction requires a counterparty", t.Type)
		}
	case TransactionTypeSubscription, TransactionTypeBill:
		if t.Description == "" {
			return fmt.Errorf("%s transaction requires a description", t.Type)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// Incoming reports whether the record credits its owner.
func (t *Transaction) Incoming() bool {
	return t.Type == TransactionTypeReceived
}
