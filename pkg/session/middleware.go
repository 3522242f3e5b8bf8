package session

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth returns a Fiber middleware that resolves the session cookie.
// On success it sets the owner id into c.Locals("userId"); otherwise it
// responds 401 and performs no further work.
func RequireAuth(m *Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(CookieName)
		if sid == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized, please login"})
		}
		userID, err := m.Resolve(c.Context(), sid)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized, please login"})
		}
		c.Locals("userId", userID.String())
		return c.Next()
	}
}
