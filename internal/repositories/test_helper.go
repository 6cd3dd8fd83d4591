package repositories

import (
	"testing"

	"bankee/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser inserts a user with a wallet holding the given balance.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email, accountNumber string, balance decimal.Decimal) *models.User {
	t.Helper()

	user := &models.User{
		Email:         email,
		Password:      "hashed_password",
		Name:          name,
		AccountNumber: accountNumber,
		IBAN:          "PK0123" + accountNumber,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	wallet := &models.Wallet{UserID: user.ID, Balance: balance, Currency: "USD", Status: "active"}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	user.WalletID = &wallet.ID
	user.Wallet = wallet
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("failed to link test wallet: %v", err)
	}

	return user
}
