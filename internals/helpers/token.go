package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Raw JWT stored in Locals by the auth middleware.
const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetRawAccessToken stores the verified raw token for reuse downstream.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetUserIDFromLocals reads the user id placed by the auth middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user context")
}

// GetAcademyIDFromLocals reads the academy scope placed by the auth middleware.
func GetAcademyIDFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("academy_id").(string); ok {
		return v
	}
	return ""
}

// GetRoleFromLocals reads the role claim placed by the auth middleware.
func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}
