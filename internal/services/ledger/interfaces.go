package ledger

import (
	"context"

	"bankee/internal/models"

	"github.com/shopspring/decimal"
)

// Service performs balance-changing operations exactly once, consistently,
// or not at all. Every operation executes as a single atomic unit against
// the store; no call site may read a balance outside the unit and write it
// back inside.
type Service interface {
	// Transfer debits the sender, credits the receiver and appends the
	// paired sent/received records plus one notification per participant.
	Transfer(ctx context.Context, senderID, receiverID uint, amount decimal.Decimal, description string) (*models.Transaction, error)

	// PayBill debits the payer and appends a single bill-typed record.
	PayBill(ctx context.Context, userID uint, bill BillRequest) (*models.Transaction, error)

	// PurchaseSubscription debits the subscriber and creates the
	// subscription row and its transaction record in the same unit.
	PurchaseSubscription(ctx context.Context, userID uint, sub SubscriptionRequest) (*models.Subscription, error)
}

// CacheInvalidator drops stale balance entries after a commit.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// FeedPublisher pushes committed changes to live read-model subscribers.
type FeedPublisher interface {
	Publish(event Event)
}

// Event describes one committed balance change for a single account.
type Event struct {
	UserID      uint
	Balance     decimal.Decimal
	Transaction *models.Transaction
}
