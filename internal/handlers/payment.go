package handlers

import (
	"bankee/internal/models"
	"bankee/internal/repositories"
	"bankee/internal/services/ledger"
	"bankee/internal/utils/response"
	"bankee/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PaymentHandler exposes bill payment and subscription purchase endpoints.
type PaymentHandler struct {
	ledger        ledger.Service
	subscriptions repositories.SubscriptionRepository
}

func NewPaymentHandler(ledgerSvc ledger.Service, subs repositories.SubscriptionRepository) *PaymentHandler {
	return &PaymentHandler{ledger: ledgerSvc, subscriptions: subs}
}

// PayBill handles POST /api/bills/pay.
func (h *PaymentHandler) PayBill(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		BillerName string          `json:"biller_name" validate:"required"`
		BillNumber string          `json:"bill_number" validate:"required"`
		Amount     decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, "biller name and bill number are required")
	}

	tx, err := h.ledger.PayBill(c.Context(), claims.UserID, ledger.BillRequest{
		BillerName: req.BillerName,
		BillNumber: req.BillNumber,
		Amount:     req.Amount,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "bill paid", transactionView(tx))
}

// Subscribe handles POST /api/subscriptions.
func (h *PaymentHandler) Subscribe(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		ServiceID   string          `json:"service_id" validate:"required"`
		ServiceName string          `json:"service_name"`
		PlanID      string          `json:"plan_id" validate:"required"`
		PlanName    string          `json:"plan_name"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, "service and plan are required")
	}

	sub, err := h.ledger.PurchaseSubscription(c.Context(), claims.UserID, ledger.SubscriptionRequest{
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		PlanID:      req.PlanID,
		PlanName:    req.PlanName,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	return response.Success(c, "subscription activated", fiber.Map{
		"id":           sub.ID,
		"service_name": sub.ServiceName,
		"plan_name":    sub.PlanName,
		"price":        sub.Price.StringFixed(2),
		"start_date":   sub.StartDate,
		"status":       sub.Status,
		"auto_renew":   sub.AutoRenew,
	})
}

// ListSubscriptions handles GET /api/subscriptions.
func (h *PaymentHandler) ListSubscriptions(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	subs, err := h.subscriptions.ListByUser(claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load subscriptions")
	}
	out := make([]fiber.Map, 0, len(subs))
	for _, s := range subs {
		out = append(out, fiber.Map{
			"id":           s.ID,
			"service_name": s.ServiceName,
			"plan_name":    s.PlanName,
			"price":        s.Price.StringFixed(2),
			"start_date":   s.StartDate,
			"status":       s.Status,
			"auto_renew":   s.AutoRenew,
		})
	}
	return response.Success(c, "subscriptions", out)
}
