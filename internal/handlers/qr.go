package handlers

import (
	"bankee/internal/models"
	"bankee/internal/services/qrpay"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// QRHandler exposes QR payment-request generation and settlement.
type QRHandler struct {
	qr qrpay.Service
}

func NewQRHandler(qrSvc qrpay.Service) *QRHandler {
	return &QRHandler{qr: qrSvc}
}

// Generate handles POST /api/qr/generate. The caller becomes the recipient
// of the encoded payment request.
func (h *QRHandler) Generate(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	payload, err := h.qr.GeneratePaymentRequest(c.Context(), claims.UserID, req.Amount)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "payment request", fiber.Map{
		"payload": string(payload),
	})
}

// Pay handles POST /api/qr/pay with the scanned payload.
func (h *QRHandler) Pay(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Payload string `json:"payload"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	tx, err := h.qr.Pay(c.Context(), claims.UserID, []byte(req.Payload))
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "payment completed", transactionView(tx))
}
