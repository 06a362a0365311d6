package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader is the header carrying the admin API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth guards a route group with a shared API key. The comparison is
// constant time so response timing reveals nothing about the key.
func APIKeyAuth(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
