package handler

import (
	"errors"

	"hr-payroll/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const unexpectedErrorMessage = "An unexpected error occurred"

func init() {
	// The UI formats amounts with Intl.NumberFormat, which wants numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ok writes {success: true, ...payload}.
func ok(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(body)
}

// fail maps an error onto the response envelope. Business rule failures are
// answered with 200 and success=false; anything else is logged and becomes a 500.
func fail(c *fiber.Ctx, err error) error {
	if apperror.IsBusiness(err) {
		appErr, _ := apperror.As(err)
		return c.JSON(fiber.Map{"success": false, "message": appErr.Message})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": unexpectedErrorMessage,
	})
}

// ErrorHandler is the fiber.Config error handler: routing errors keep their
// status code, panics and other errors become a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"success": false, "message": fe.Message})
	}
	return fail(c, err)
}
