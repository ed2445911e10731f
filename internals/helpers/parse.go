package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SplitIDList parses a comma-separated id list query value, trimming blanks
// and dropping duplicates while preserving first-seen order.
func SplitIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// QueryLimit reads ?limit= with a default and a hard cap.
func QueryLimit(c *fiber.Ctx, def, max int) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// RequireQuery returns the query value or a 400 naming the missing field.
func RequireQuery(c *fiber.Ctx, key string) (string, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, key+" is required")
	}
	return v, nil
}
