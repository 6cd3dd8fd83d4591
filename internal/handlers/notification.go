package handlers

import (
	"strconv"

	"bankee/internal/models"
	"bankee/internal/services/notification"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	notifications notification.Service
}

func NewNotificationHandler(notifications notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	items, err := h.notifications.List(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to load notifications")
	}
	unread, err := h.notifications.UnreadCount(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "failed to count notifications")
	}

	out := make([]fiber.Map, 0, len(items))
	for _, n := range items {
		out = append(out, fiber.Map{
			"id":        n.ID,
			"title":     n.Title,
			"body":      n.Body,
			"type":      n.Type,
			"icon":      n.Icon,
			"color":     n.Color,
			"read":      n.Read,
			"timestamp": n.Timestamp,
		})
	}
	return response.Success(c, "notifications", fiber.Map{
		"items":  out,
		"unread": unread,
	})
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid notification id")
	}
	if err := h.notifications.MarkAsRead(c.Context(), claims.UserID, uint(id)); err != nil {
		return response.BadRequest(c, "notification not found")
	}
	return response.Success(c, "notification marked read", nil)
}
