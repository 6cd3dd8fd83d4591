package handlers

import (
	"time"

	"bankee/internal/models"
	"bankee/internal/services/auth"
	"bankee/internal/services/signup"
	"bankee/internal/services/user"
	"bankee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes registration and session endpoints.
type AuthHandler struct {
	authService auth.Service
	userService user.Service
}

func NewAuthHandler(authService auth.Service, userService user.Service) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type registerRequest struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Occupation  string     `json:"occupation"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// Register handles POST /api/register. The request is run through the signup
// state machine so the API enforces the same step guards as the client flow.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	flow := signup.NewFlow()
	input := signup.Data{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Occupation:  req.Occupation,
		DateOfBirth: req.DateOfBirth,
	}
	for flow.State() != signup.StateComplete {
		if err := flow.Advance(input); err != nil {
			return response.BadRequest(c, err.Error())
		}
	}
	data, err := flow.Result()
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	created, err := h.userService.Register(c.Context(), user.RegisterRequest{
		Email:       data.Email,
		Password:    data.Password,
		Name:        data.Name,
		Phone:       data.Phone,
		Address:     data.Address,
		Occupation:  data.Occupation,
		DateOfBirth: data.DateOfBirth,
	})
	if err != nil {
		return response.Domain(c, err)
	}

	return response.Success(c, "account created", profileView(created))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	u, access, refresh, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return response.Domain(c, err)
	}

	return response.Success(c, "login successful", fiber.Map{
		"user":          profileView(u),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Refresh handles POST /api/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	access, refresh, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "tokens refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Logout handles POST /api/logout. It bumps the token version, invalidating
// every outstanding token for the user.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	if err := h.authService.Logout(claims.UserID); err != nil {
		return response.ServerError(c, "failed to log out")
	}
	return response.Success(c, "logged out", nil)
}

func profileView(u *models.User) fiber.Map {
	return fiber.Map{
		"id":             u.ID,
		"email":          u.Email,
		"name":           u.Name,
		"phone":          u.Phone,
		"account_number": u.AccountNumber,
		"iban":           u.IBAN,
		"address":        u.Address,
		"occupation":     u.Occupation,
		"kyc_verified":   u.KYCVerified,
	}
}
