package auth

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
)

// RequireRoles rejects requests whose token role is not in allowed.
// Must run after AuthMiddleware.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
		}
		if !constants.HasRole(role, allowed) {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role")
		}
		return c.Next()
	}
}
