package ledger

import "github.com/shopspring/decimal"

// BillRequest describes a bill payment to an external biller.
type BillRequest struct {
	BillerName string
	BillNumber string
	Amount     decimal.Decimal
}

// SubscriptionRequest describes a subscription purchase.
type SubscriptionRequest struct {
	ServiceID   string
	ServiceName string
	PlanID      string
	PlanName    string
	Price       decimal.Decimal
	Description string
}
