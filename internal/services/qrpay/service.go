// Package qrpay handles QR-initiated payments: generating the payment-request
// payload a recipient shows, and settling a scanned payload through the
// ledger. Rendering the payload as a scannable image is the client's job.
package qrpay

import (
	"context"
	"time"

	"bankee/internal/models"
	"bankee/internal/services/ledger"

	"github.com/shopspring/decimal"
)

type Service interface {
	// GeneratePaymentRequest builds the payload a recipient displays.
	GeneratePaymentRequest(ctx context.Context, recipientID uint, amount decimal.Decimal) ([]byte, error)
	// Pay decodes a scanned payload and settles it. The effect is identical
	// to a contact-initiated transfer of the same amount to the recipient.
	Pay(ctx context.Context, payerID uint, payload []byte) (*models.Transaction, error)
}

type service struct {
	ledger ledger.Service
}

func NewService(ledgerSvc ledger.Service) Service {
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{ledger: ledgerSvc}
}

func (s *service) GeneratePaymentRequest(ctx context.Context, recipientID uint, amount decimal.Decimal) ([]byte, error) {
	return Encode(recipientID, amount, time.Now())
}

func (s *service) Pay(ctx context.Context, payerID uint, payload []byte) (*models.Transaction, error) {
	req, err := Decode(payload)
	if err != nil {
		return nil, err
	}
	return s.ledger.Transfer(ctx, payerID, req.RecipientID, req.Amount, "QR Payment")
}
