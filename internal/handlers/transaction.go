package handlers

import (
	"strconv"

	"bankee/internal/models"
	"bankee/internal/services/history"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler serves the full history screen with its client-side
// style filters applied server-side for API parity.
type TransactionHandler struct {
	history history.Service
}

func NewTransactionHandler(historySvc history.Service) *TransactionHandler {
	return &TransactionHandler{history: historySvc}
}

// History handles GET /api/transactions?type=sent&q=ali. Type filtering and
// free-text search are pure projections over the fetched collection.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	txns, err := h.history.History(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load transaction history")
	}

	txns = history.FilterByType(txns, c.Query("type"))
	txns = history.Search(txns, c.Query("q"))

	return response.Success(c, "transactions", transactionViews(txns))
}

// Detail handles GET /api/transactions/:id, the per-transaction detail
// screen.
func (h *TransactionHandler) Detail(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	txn, err := h.history.Detail(c.Context(), claims.UserID, uint(id))
	if err != nil {
		return response.Error(c, fiber.StatusNotFound, "transaction not found")
	}
	return response.Success(c, "transaction", transactionView(txn))
}
