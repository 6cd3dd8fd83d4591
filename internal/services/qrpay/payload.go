package qrpay

import (
	"encoding/json"
	"time"

	errs "bankee/internal/errors"

	"github.com/shopspring/decimal"
)

// payloadType is the only accepted value of the "type" field. Anything else
// is rejected before any ledger operation is attempted.
const payloadType = "payment"

// PaymentRequest is the wire format carried inside a payment QR code.
type PaymentRequest struct {
	Type        string          `json:"type"`
	RecipientID uint            `json:"recipientId"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   string          `json:"timestamp"`
}

// Encode serializes a payment request for QR rendering by the client.
func Encode(recipientID uint, amount decimal.Decimal, now time.Time) ([]byte, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.ErrInvalidAmount
	}
	return json.Marshal(PaymentRequest{
		Type:        payloadType,
		RecipientID: recipientID,
		Amount:      amount,
		Timestamp:   now.UTC().Format(time.RFC3339),
	})
}

// Decode parses a scanned payload and validates its shape.
func Decode(data []byte) (*PaymentRequest, error) {
	var req PaymentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errs.ErrInvalidPaymentCode
	}
	if req.Type != payloadType || req.RecipientID == 0 {
		return nil, errs.ErrInvalidPaymentCode
	}
	return &req, nil
}
