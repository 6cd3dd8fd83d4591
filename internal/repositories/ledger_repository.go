package repositories

import "bankee/internal/models"

// LedgerRepository is the transactional unit of work for balance-changing
// operations. Every call site must perform its read-validate-write sequence
// inside a single ExecuteInTransaction closure; reading a balance outside the
// closure and writing it back inside is the one mistake this interface exists
// to prevent.
type LedgerRepository interface {
	// GetWallet reads a wallet row without locking, for read-model use.
	GetWallet(userID uint) (*models.Wallet, error)
	// GetWalletForUpdate reads a wallet row with an exclusive row lock so
	// concurrent transfers touching the same account serialize.
	GetWalletForUpdate(userID uint) (*models.Wallet, error)
	GetUser(userID uint) (*models.User, error)
	UpdateWallet(wallet *models.Wallet) error
	CreateTransaction(tx *models.Transaction) error
	CreateNotification(n *models.Notification) error
	CreateSubscription(s *models.Subscription) error

	// ExecuteInTransaction runs fn atomically. All writes commit together or
	// not at all; conflicts abort the whole unit.
	ExecuteInTransaction(fn func(tx LedgerRepository) error) error
}
