// Package ledger implements the balance-transfer consistency protocol.
// Debits, credits, transaction records, subscriptions and notifications for
// one operation all commit inside a single store transaction; a failure at
// any step aborts the whole unit with zero observable writes.
package ledger

import (
	"context"
	"log"
	"time"

	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/services/notification"
	"bankee/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   CacheInvalidator
	feed    FeedPublisher
	metrics MetricsCollector
}

// NewService creates a new ledger service. Cache and feed are optional;
// metrics defaults to a no-op collector.
func NewService(repo repositories.LedgerRepository, cache CacheInvalidator, feed FeedPublisher, metrics MetricsCollector) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{repo: repo, cache: cache, feed: feed, metrics: metrics}
}

func (s *service) Transfer(ctx context.Context, senderID, receiverID uint, amount decimal.Decimal, description string) (*models.Transaction, error) {
	start := time.Now()
	// Amount rejections happen before any store access.
	if !validation.ValidAmount(amount) {
		s.metrics.RecordError("transfer", "invalid_amount")
		return nil, errs.ErrInvalidAmount
	}
	if senderID == receiverID {
		s.metrics.RecordError("transfer", "self_reference")
		return nil, errs.ErrSelfReference
	}
	if description == "" {
		description = "Money Transfer"
	}

	// One timestamp and reference, shared by both legs, so both sides agree
	// on when the transfer happened.
	ts := time.Now().UTC()
	ref := uuid.NewString()

	var sentRecord *models.Transaction
	var senderBalance, receiverBalance decimal.Decimal
	var receivedRecord *models.Transaction

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		// Lock wallets in ascending user order so two opposing transfers
		// cannot deadlock.
		first, second := senderID, receiverID
		if receiverID < senderID {
			first, second = receiverID, senderID
		}
		wallets := make(map[uint]*models.Wallet, 2)
		for _, id := range []uint{first, second} {
			w, err := tx.GetWalletForUpdate(id)
			if err != nil {
				if err == repositories.ErrWalletNotFound {
					return errs.ErrAccountNotFound
				}
				return err
			}
			wallets[id] = w
		}

		sender, err := tx.GetUser(senderID)
		if err != nil {
			return errs.ErrAccountNotFound
		}
		receiver, err := tx.GetUser(receiverID)
		if err != nil {
			return errs.ErrAccountNotFound
		}

		senderWallet, receiverWallet := wallets[senderID], wallets[receiverID]
		if !senderWallet.CanDebit(amount) {
			return errs.ErrInsufficientFunds
		}

		senderWallet.Balance = senderWallet.Balance.Sub(amount)
		if err := tx.UpdateWallet(senderWallet); err != nil {
			return err
		}
		receiverWallet.Balance = receiverWallet.Balance.Add(amount)
		if err := tx.UpdateWallet(receiverWallet); err != nil {
			return err
		}

		sentRecord = &models.Transaction{
			OwnerID:          senderID,
			Type:             models.TransactionTypeSent,
			Amount:           amount,
			Description:      description,
			CounterpartyID:   &receiver.ID,
			CounterpartyName: receiver.Name,
			Reference:        ref,
			Timestamp:        ts,
			Status:           models.TransactionStatusCompleted,
		}
		if err := tx.CreateTransaction(sentRecord); err != nil {
			return err
		}
		receivedRecord = &models.Transaction{
			OwnerID:          receiverID,
			Type:             models.TransactionTypeReceived,
			Amount:           amount,
			Description:      description,
			CounterpartyID:   &sender.ID,
			CounterpartyName: sender.Name,
			Reference:        ref,
			Timestamp:        ts,
			Status:           models.TransactionStatusCompleted,
		}
		if err := tx.CreateTransaction(receivedRecord); err != nil {
			return err
		}

		if err := tx.CreateNotification(notification.MoneySent(senderID, amount, receiver.Name, ts)); err != nil {
			return err
		}
		if err := tx.CreateNotification(notification.MoneyReceived(receiverID, amount, sender.Name, ts)); err != nil {
			return err
		}

		senderBalance = senderWallet.Balance
		receiverBalance = receiverWallet.Balance
		return nil
	})
	if err != nil {
		return nil, s.fail("transfer", err)
	}

	s.afterCommit(ctx, "transfer", amount, time.Since(start),
		Event{UserID: senderID, Balance: senderBalance, Transaction: sentRecord},
		Event{UserID: receiverID, Balance: receiverBalance, Transaction: receivedRecord},
	)
	return sentRecord, nil
}

func (s *service) PayBill(ctx context.Context, userID uint, bill BillRequest) (*models.Transaction, error) {
	start := time.Now()
	if !validation.ValidAmount(bill.Amount) {
		s.metrics.RecordError("bill_payment", "invalid_amount")
		return nil, errs.ErrInvalidAmount
	}

	ts := time.Now().UTC()
	var record *models.Transaction
	var balance decimal.Decimal

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		wallet, err := tx.GetWalletForUpdate(userID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return errs.ErrAccountNotFound
			}
			return err
		}
		if !wallet.CanDebit(bill.Amount) {
			return errs.ErrInsufficientFunds
		}

		wallet.Balance = wallet.Balance.Sub(bill.Amount)
		if err := tx.UpdateWallet(wallet); err != nil {
			return err
		}

		record = &models.Transaction{
			OwnerID:     userID,
			Type:        models.TransactionTypeBill,
			Amount:      bill.Amount,
			Description: bill.BillerName + " Bill Payment - " + bill.BillNumber,
			Reference:   uuid.NewString(),
			Timestamp:   ts,
			Status:      models.TransactionStatusCompleted,
		}
		if err := tx.CreateTransaction(record); err != nil {
			return err
		}
		if err := tx.CreateNotification(notification.BillPayment(userID, bill.BillerName, bill.Amount, ts)); err != nil {
			return err
		}

		balance = wallet.Balance
		return nil
	})
	if err != nil {
		return nil, s.fail("bill_payment", err)
	}

	s.afterCommit(ctx, "bill_payment", bill.Amount, time.Since(start),
		Event{UserID: userID, Balance: balance, Transaction: record})
	return record, nil
}

func (s *service) PurchaseSubscription(ctx context.Context, userID uint, sub SubscriptionRequest) (*models.Subscription, error) {
	start := time.Now()
	if !validation.ValidAmount(sub.Price) {
		s.metrics.RecordError("subscription", "invalid_amount")
		return nil, errs.ErrInvalidAmount
	}

	ts := time.Now().UTC()
	var created *models.Subscription
	var record *models.Transaction
	var balance decimal.Decimal

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		wallet, err := tx.GetWalletForUpdate(userID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return errs.ErrAccountNotFound
			}
			return err
		}
		if !wallet.CanDebit(sub.Price) {
			return errs.ErrInsufficientFunds
		}

		wallet.Balance = wallet.Balance.Sub(sub.Price)
		if err := tx.UpdateWallet(wallet); err != nil {
			return err
		}

		created = &models.Subscription{
			UserID:      userID,
			ServiceID:   sub.ServiceID,
			ServiceName: sub.ServiceName,
			PlanID:      sub.PlanID,
			PlanName:    sub.PlanName,
			Price:       sub.Price,
			StartDate:   ts,
			Status:      "active",
			AutoRenew:   true,
		}
		if err := tx.CreateSubscription(created); err != nil {
			return err
		}

		description := sub.Description
		if description == "" {
			description = sub.ServiceName + " " + sub.PlanName + " subscription"
		}
		record = &models.Transaction{
			OwnerID:     userID,
			Type:        models.TransactionTypeSubscription,
			Amount:      sub.Price,
			Description: description,
			Reference:   uuid.NewString(),
			Timestamp:   ts,
			Status:      models.TransactionStatusCompleted,
		}
		if err := tx.CreateTransaction(record); err != nil {
			return err
		}
		if err := tx.CreateNotification(notification.SubscriptionPurchased(userID, sub.ServiceName, sub.Price, ts)); err != nil {
			return err
		}

		balance = wallet.Balance
		return nil
	})
	if err != nil {
		return nil, s.fail("subscription", err)
	}

	s.afterCommit(ctx, "subscription", sub.Price, time.Since(start),
		Event{UserID: userID, Balance: balance, Transaction: record})
	return created, nil
}

// fail maps an aborted unit to the domain taxonomy. Domain errors pass
// through; store conflicts become retryable TransferConflict; everything
// else surfaces as a generic store error.
func (s *service) fail(operation string, err error) error {
	if de, ok := err.(*errs.DomainError); ok {
		s.metrics.RecordError(operation, de.Code)
		s.metrics.RecordOperation(operation, "rejected")
		return de
	}
	if repositories.IsConflict(err) {
		s.metrics.RecordError(operation, errs.ErrTransferConflict.Code)
		s.metrics.RecordOperation(operation, "conflict")
		return errs.ErrTransferConflict
	}
	log.Printf("ledger %s failed: %v", operation, err)
	s.metrics.RecordError(operation, errs.ErrStore.Code)
	s.metrics.RecordOperation(operation, "error")
	return errs.ErrStore
}

func (s *service) afterCommit(ctx context.Context, operation string, amount decimal.Decimal, elapsed time.Duration, events ...Event) {
	s.metrics.RecordOperation(operation, "completed")
	s.metrics.RecordOperationDuration(operation, elapsed)
	s.metrics.RecordVolume(operation, amount)

	for _, ev := range events {
		if s.cache != nil {
			if err := s.cache.InvalidateWallet(ctx, ev.UserID); err != nil {
				log.Printf("failed to invalidate wallet cache for user %d: %v", ev.UserID, err)
			}
		}
		if s.feed != nil {
			s.feed.Publish(ev)
		}
	}
}
