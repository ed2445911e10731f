package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// NoCacheMiddleware disables intermediary/browser caching on every API
// response. Dashboard data changes frequently and a stale answer is worse
// than a refetch, so consistency wins over cacheability here.
func NoCacheMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
