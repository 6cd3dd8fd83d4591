package handlers

import (
	"bankee/internal/models"
	"bankee/internal/services/user"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the profile screen.
type ProfileHandler struct {
	users user.Service
}

func NewProfileHandler(users user.Service) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	u, err := h.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "profile", profileView(u))
}

// Update handles PATCH /api/profile. Absent fields are left untouched.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Name       *string `json:"name"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		Occupation *string `json:"occupation"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	u, err := h.users.UpdateProfile(c.Context(), claims.UserID, user.ProfileUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Occupation: req.Occupation,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "profile updated", profileView(u))
}
