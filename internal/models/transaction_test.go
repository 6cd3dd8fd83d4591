package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() Transaction {
	return Transaction{
		OwnerID:   1,
		Amount:    decimal.RequireFromString("10.00"),
		Timestamp: time.Now().UTC(),
		Status:    TransactionStatusCompleted,
	}
}

func TestTransactionValidate(t *testing.T) {
	counterparty := uint(2)

	t.Run("sent requires counterparty", func(t *testing.T) {
		tx := validBase()
		tx.Type = TransactionTypeSent
		assert.Error(t, tx.Validate())

		tx.CounterpartyID = &counterparty
		assert.NoError(t, tx.Validate())
	})

	t.Run("received requires counterparty", func(t *testing.T) {
		tx := validBase()
		tx.Type = TransactionTypeReceived
		zero := uint(0)
		tx.CounterpartyID = &zero
		assert.Error(t, tx.Validate())

		tx.CounterpartyID = &counterparty
		assert.NoError(t, tx.Validate())
	})

	t.Run("bill requires description", func(t *testing.T) {
		tx := validBase()
		tx.Type = TransactionTypeBill
		assert.Error(t, tx.Validate())

		tx.Description = "K-Electric Bill Payment - KE-778899"
		assert.NoError(t, tx.Validate())
	})

	t.Run("subscription requires description", func(t *testing.T) {
		tx := validBase()
		tx.Type = TransactionTypeSubscription
		assert.Error(t, tx.Validate())

		tx.Description = "Netflix Premium subscription"
		assert.NoError(t, tx.Validate())
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		tx := validBase()
		tx.Type = "refund"
		tx.Description = "whatever"
		require.Error(t, tx.Validate())
	})

	t.Run("common field guards", func(t *testing.T) {
		tx := validBase()
		tx.Type = TransactionTypeBill
		tx.Description = "bill"

		tx.OwnerID = 0
		assert.Error(t, tx.Validate())

		tx = validBase()
		tx.Type = TransactionTypeBill
		tx.Description = "bill"
		tx.Amount = decimal.Zero
		assert.Error(t, tx.Validate())

		tx = validBase()
		tx.Type = TransactionTypeBill
		tx.Description = "bill"
		tx.Timestamp = time.Time{}
		assert.Error(t, tx.Validate())
	})
}

func TestTransactionIncoming(t *testing.T) {
	assert.True(t, (&Transaction{Type: TransactionTypeReceived}).Incoming())
	assert.False(t, (&Transaction{Type: TransactionTypeSent}).Incoming())
	assert.False(t, (&Transaction{Type: TransactionTypeBill}).Incoming())
}
