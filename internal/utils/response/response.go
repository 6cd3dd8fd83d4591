package response

import (
	errs "bankee/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// Domain renders a domain error with the HTTP status its kind maps to.
// Unknown errors render as a generic 500 without leaking internals.
func Domain(c *fiber.Ctx, err error) error {
	de, ok := err.(*errs.DomainError)
	if !ok {
		return ServerError(c, "internal error")
	}
	status := fiber.StatusBadRequest
	switch de {
	case errs.ErrUnauthenticated:
		status = fiber.StatusUnauthorized
	case errs.ErrAccountNotFound, errs.ErrUserNotFound:
		status = fiber.StatusNotFound
	case errs.ErrDuplicateContact, errs.ErrTransferConflict, errs.ErrEmailTaken:
		status = fiber.StatusConflict
	case errs.ErrStore:
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error": de.Message,
		"code":  de.Code,
	})
}
