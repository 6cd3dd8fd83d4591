// Package history is the balance and transaction read model. It may lag the
// write model; its own committed writes appear on the next delivered feed
// event for a subscribed session.
package history

import (
	"context"
	"fmt"
	"strings"

	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/repositories/cache"

	"github.com/shopspring/decimal"
)

// RecentLimit bounds the wallet screen's recent-transactions view.
const RecentLimit = 10

type Service interface {
	GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error)
	Recent(ctx context.Context, userID uint) ([]models.Transaction, error)
	History(ctx context.Context, userID uint) ([]models.Transaction, error)
	// Detail returns one of the owner's records. Another account's record
	// is indistinguishable from a missing one.
	Detail(ctx context.Context, userID, txnID uint) (*models.Transaction, error)
}

type service struct {
	wallets repositories.LedgerRepository
	txns    repositories.TransactionRepository
	cache   *cache.Service
}

func NewService(wallets repositories.LedgerRepository, txns repositories.TransactionRepository, cacheSvc *cache.Service) Service {
	if wallets == nil || txns == nil {
		panic("history service requires ledger and transaction repositories")
	}
	return &service{wallets: wallets, txns: txns, cache: cacheSvc}
}

func (s *service) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	if s.cache != nil {
		if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
			return wallet.Balance, nil
		}
	}

	wallet, err := s.wallets.GetWallet(userID)
	if err != nil {
		return decimal.Zero, err
	}
	if s.cache != nil {
		_ = s.cache.SetWallet(ctx, wallet)
	}
	return wallet.Balance, nil
}

func (s *service) Recent(ctx context.Context, userID uint) ([]models.Transaction, error) {
	txns, err := s.txns.ListByOwner(userID, RecentLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	return txns, nil
}

func (s *service) History(ctx context.Context, userID uint) ([]models.Transaction, error) {
	txns, err := s.txns.ListByOwner(userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}
	return txns, nil
}

func (s *service) Detail(ctx context.Context, userID, txnID uint) (*models.Transaction, error) {
	return s.txns.GetByID(userID, txnID)
}

// FilterByType is a pure projection over an already-fetched collection.
// An empty filter returns the input unchanged.
func FilterByType(txns []models.Transaction, txType string) []models.Transaction {
	if txType == "" {
		return txns
	}
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Type == txType {
			out = append(out, t)
		}
	}
	return out
}

// Search matches the query case-insensitively against counterparty name and
// description. Purely client-side; no store access.
func Search(txns []models.Transaction, query string) []models.Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return txns
	}
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.CounterpartyName), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}
