package repositories

import (
	"fmt"

	"bankee/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository is the read side of the ledger. Records are written
// only through LedgerRepository inside an atomic unit.
type TransactionRepository interface {
	// ListByOwner returns the owner's records ordered by timestamp
	// descending. limit <= 0 means unbounded (full history view).
	ListByOwner(ownerID uint, limit, offset int) ([]models.Transaction, error)
	GetByID(ownerID, id uint) (*models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListByOwner(ownerID uint, limit, offset int) ([]models.Transaction, error) {
	var txns []models.Transaction
	q := r.db.Where("owner_id = ?", ownerID).Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) GetByID(ownerID, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.Where("owner_id = ? AND id = ?", ownerID, id).First(&txn).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}
