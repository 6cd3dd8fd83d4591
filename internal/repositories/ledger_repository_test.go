package repositories

import (
	"errors"
	"testing"
	"time"

	"bankee/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_ValidatesAtStoreBoundary(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewLedgerRepository(db)
	user := CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)

	// A sent record with no counterparty never reaches the table.
	err := repo.CreateTransaction(&models.Transaction{
		OwnerID:   user.ID,
		Type:      models.TransactionTypeSent,
		Amount:    decimal.RequireFromString("5.00"),
		Timestamp: time.Now().UTC(),
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExecuteInTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewLedgerRepository(db)
	user := CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.RequireFromString("100.00"))

	boom := errors.New("boom")
	err := repo.ExecuteInTransaction(func(tx LedgerRepository) error {
		wallet, err := tx.GetWalletForUpdate(user.ID)
		if err != nil {
			return err
		}
		wallet.Balance = wallet.Balance.Sub(decimal.RequireFromString("40.00"))
		if err := tx.UpdateWallet(wallet); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	wallet, err := repo.GetWallet(user.ID)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestGetWallet_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewLedgerRepository(db)

	_, err := repo.GetWallet(9999)
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = repo.GetWalletForUpdate(9999)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestIsConflict(t *testing.T) {
	assert.False(t, IsConflict(nil))
	assert.False(t, IsConflict(errors.New("some other failure")))
	assert.True(t, IsConflict(errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
	assert.True(t, IsConflict(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, IsConflict(errors.New("database is locked")))
}
