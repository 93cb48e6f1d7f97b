package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/auth"
	applog "tradepost/internal/log"
)

// RequireUser is the identity guard for protected routes. It demands
// both a signed token and a caller-declared subject, and accepts the
// request only when the verified subject matches the declaration.
// Downstream ownership checks rely on the attached identity without
// re-verifying the token.
func RequireUser(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("token")
		declared := c.Get("userid")
		if token == "" || declared == "" {
			applog.Security(c, "auth.credentials.missing", nil)
			return respondFail(c, fiber.StatusUnauthorized, "Unauthorized: Access is denied.")
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return respondFail(c, fiber.StatusForbidden, "Forbidden: Invalid or expired token.")
		}
		// A valid token presented alongside someone else's identifier
		// is still a forbidden request.
		if subject != declared {
			applog.Security(c, "auth.subject.mismatch", map[string]any{"declared": declared})
			return respondFail(c, fiber.StatusForbidden, "Forbidden: Identity mismatch.")
		}

		c.Locals("userId", subject)
		return c.Next()
	}
}

// callerID returns the identity attached by RequireUser.
func callerID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userId").(string)
	return uid
}
