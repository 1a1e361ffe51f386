package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SessionCookie carries the signed session token issued at login.
const SessionCookie = "session"

type SessionVerifier interface {
	Verify(token string) error
}

// Auth protects JSON endpoints: a missing or invalid session gets a 401 envelope.
func Auth(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := verifier.Verify(c.Cookies(SessionCookie)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Login required",
			})
		}

		return c.Next()
	}
}

// AuthPage protects browser pages by redirecting to the login page instead.
func AuthPage(verifier SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := verifier.Verify(c.Cookies(SessionCookie)); err != nil {
			return c.Redirect("/login")
		}

		return c.Next()
	}
}
