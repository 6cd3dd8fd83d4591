package handlers

import (
	"bankee/internal/models"
	"bankee/internal/services/history"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler serves the wallet screen: current balance plus the recent
// transaction view.
type WalletHandler struct {
	history history.Service
}

func NewWalletHandler(historySvc history.Service) *WalletHandler {
	return &WalletHandler{history: historySvc}
}

// GetBalance handles GET /api/wallet.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	balance, err := h.history.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load balance")
	}
	recent, err := h.history.Recent(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load recent transactions")
	}

	return response.Success(c, "wallet", fiber.Map{
		"balance":      balance.StringFixed(2),
		"currency":     "USD",
		"transactions": transactionViews(recent),
	})
}

func transactionViews(txns []models.Transaction) []fiber.Map {
	out := make([]fiber.Map, 0, len(txns))
	for i := range txns {
		out = append(out, transactionView(&txns[i]))
	}
	return out
}

func transactionView(t *models.Transaction) fiber.Map {
	v := fiber.Map{
		"id":          t.ID,
		"type":        t.Type,
		"amount":      t.Amount.StringFixed(2),
		"description": t.Description,
		"timestamp":   t.Timestamp,
		"status":      t.Status,
		"reference":   t.Reference,
	}
	if t.CounterpartyID != nil {
		v["counterparty"] = fiber.Map{
			"id":   *t.CounterpartyID,
			"name": t.CounterpartyName,
		}
	}
	return v
}
