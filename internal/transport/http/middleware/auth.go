package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/niteshvshukla2026-sudo/event-task-management/internal/auth"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// callerKey is the fiber locals key holding the resolved AuthContext.
const callerKey = "caller"

// RequireAuth resolves the Bearer token to an AuthContext and stores it
// in request locals. Requests without a valid token get 401.
func RequireAuth(authm *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		caller, err := authm.VerifyToken(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(callerKey, caller)
		return c.Next()
	}
}

// Caller returns the AuthContext resolved by RequireAuth.
func Caller(c *fiber.Ctx) entities.AuthContext {
	caller, _ := c.Locals(callerKey).(entities.AuthContext)
	return caller
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": fiber.Map{"code": "UNAUTHORIZED", "message": "missing or invalid token"},
	})
}
