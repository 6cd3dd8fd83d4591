package history

import (
	"context"
	"testing"
	"time"

	"bankee/internal/models"
	"bankee/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, ownerID uint, txType, description, counterparty string, ts time.Time) *models.Transaction {
	t.Helper()
	record := models.Transaction{
		OwnerID:          ownerID,
		Type:             txType,
		Amount:           decimal.RequireFromString("5.00"),
		Description:      description,
		CounterpartyName: counterparty,
		Timestamp:        ts,
		Status:           models.TransactionStatusCompleted,
	}
	if txType == models.TransactionTypeSent || txType == models.TransactionTypeReceived {
		other := ownerID + 1
		record.CounterpartyID = &other
	}
	require.NoError(t, db.Create(&record).Error)
	return &record
}

func TestGetBalance(t *testing.T) {
	db := repositories.SetupTestDB(t)
	user := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.RequireFromString("123.45"))

	svc := NewService(repositories.NewLedgerRepository(db), repositories.NewTransactionRepository(db), nil)
	balance, err := svc.GetBalance(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("123.45")))
}

func TestRecent_LimitAndOrder(t *testing.T) {
	db := repositories.SetupTestDB(t)
	user := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedTransaction(t, db, user.ID, models.TransactionTypeBill, "bill", "", base.Add(time.Duration(i)*time.Hour))
	}

	svc := NewService(repositories.NewLedgerRepository(db), repositories.NewTransactionRepository(db), nil)

	recent, err := svc.Recent(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)
	// Newest first.
	assert.True(t, recent[0].Timestamp.Equal(base.Add(14*time.Hour)))
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.After(recent[i-1].Timestamp))
	}

	all, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 15)
}

func TestHistory_OnlyOwnRecords(t *testing.T) {
	db := repositories.SetupTestDB(t)
	ali := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	sara := repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	now := time.Now().UTC()
	seedTransaction(t, db, ali.ID, models.TransactionTypeBill, "K-Electric bill", "", now)
	seedTransaction(t, db, sara.ID, models.TransactionTypeBill, "PTCL bill", "", now)

	svc := NewService(repositories.NewLedgerRepository(db), repositories.NewTransactionRepository(db), nil)
	txns, err := svc.History(context.Background(), ali.ID)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "K-Electric bill", txns[0].Description)
}

func TestDetail_ScopedToOwner(t *testing.T) {
	db := repositories.SetupTestDB(t)
	ali := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	sara := repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	record := seedTransaction(t, db, ali.ID, models.TransactionTypeBill, "K-Electric bill", "", time.Now().UTC())

	svc := NewService(repositories.NewLedgerRepository(db), repositories.NewTransactionRepository(db), nil)

	got, err := svc.Detail(context.Background(), ali.ID, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "K-Electric bill", got.Description)

	// Another account's record looks like a missing one.
	_, err = svc.Detail(context.Background(), sara.ID, record.ID)
	assert.Error(t, err)

	_, err = svc.Detail(context.Background(), ali.ID, 9999)
	assert.Error(t, err)
}

func TestFilterByType(t *testing.T) {
	txns := []models.Transaction{
		{Type: models.TransactionTypeSent},
		{Type: models.TransactionTypeReceived},
		{Type: models.TransactionTypeSent},
		{Type: models.TransactionTypeBill},
	}

	assert.Len(t, FilterByType(txns, models.TransactionTypeSent), 2)
	assert.Len(t, FilterByType(txns, models.TransactionTypeBill), 1)
	assert.Empty(t, FilterByType(txns, models.TransactionTypeSubscription))
	assert.Len(t, FilterByType(txns, ""), 4)
}

func TestSearch(t *testing.T) {
	txns := []models.Transaction{
		{CounterpartyName: "Sara Ahmed", Description: "Lunch"},
		{CounterpartyName: "Bilal Aslam", Description: "Rent"},
		{Description: "Netflix Premium subscription"},
	}

	assert.Len(t, Search(txns, "sara"), 1)
	assert.Len(t, Search(txns, "NETFLIX"), 1)
	assert.Len(t, Search(txns, "  rent "), 1)
	assert.Empty(t, Search(txns, "groceries"))
	assert.Len(t, Search(txns, ""), 3)
}
