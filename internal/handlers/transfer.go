package handlers

import (
	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/services/ledger"
	"bankee/internal/utils/response"
	"bankee/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// TransferHandler exposes P2P transfer endpoints.
type TransferHandler struct {
	ledger ledger.Service
	users  repositories.UserRepository
}

func NewTransferHandler(ledgerSvc ledger.Service, users repositories.UserRepository) *TransferHandler {
	return &TransferHandler{ledger: ledgerSvc, users: users}
}

type transferRequest struct {
	ReceiverID    uint            `json:"receiver_id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// Transfer handles POST /api/transfer. The receiver may be addressed by user
// ID (contact-initiated) or by 16-digit account number.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	receiverID := req.ReceiverID
	if receiverID == 0 && req.AccountNumber != "" {
		if !validation.ValidAccountNumber(req.AccountNumber) {
			return response.Domain(c, errs.ErrAccountNotFound)
		}
		receiver, err := h.users.GetByAccountNumber(req.AccountNumber)
		if err != nil {
			return response.Domain(c, errs.ErrAccountNotFound)
		}
		receiverID = receiver.ID
	}

	tx, err := h.ledger.Transfer(c.Context(), claims.UserID, receiverID, req.Amount, req.Description)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "transfer completed", transactionView(tx))
}
