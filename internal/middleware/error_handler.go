package middleware

import (
	"truckdeals-backend/internal/domain"
	"truckdeals-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the global error handler. Handlers normally respond
// directly; this catches errors that escape (bad routes, panics recovered by
// Fiber, domain errors returned up the chain).
func ErrorHandler(c *fiber.Ctx, err error) error {
	if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsStoreAccess(err) {
		return response.FromError(c, err)
	}

	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return response.Error(c, message, code, map[string]interface{}{})
}
