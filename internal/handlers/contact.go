package handlers

import (
	"strconv"

	"bankee/internal/models"
	"bankee/internal/services/contact"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler exposes the address book endpoints.
type ContactHandler struct {
	contacts contact.Service
}

func NewContactHandler(contacts contact.Service) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Add handles POST /api/contacts.
func (h *ContactHandler) Add(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Name          string `json:"name"`
		AccountNumber string `json:"account_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	created, err := h.contacts.AddContact(c.Context(), claims.UserID, req.Name, req.AccountNumber)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "contact added", contactView(created))
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	contacts, err := h.contacts.List(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load contacts")
	}
	out := make([]fiber.Map, 0, len(contacts))
	for i := range contacts {
		out = append(out, contactView(&contacts[i]))
	}
	return response.Success(c, "contacts", out)
}

// Remove handles DELETE /api/contacts/:id.
func (h *ContactHandler) Remove(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid contact id")
	}
	if err := h.contacts.Remove(c.Context(), claims.UserID, uint(id)); err != nil {
		return response.BadRequest(c, "contact not found")
	}
	return response.Success(c, "contact removed", nil)
}

func contactView(ct *models.Contact) fiber.Map {
	return fiber.Map{
		"id":             ct.ID,
		"user_id":        ct.UserID,
		"name":           ct.Name,
		"account_number": ct.AccountNumber,
		"added_at":       ct.AddedAt,
	}
}
