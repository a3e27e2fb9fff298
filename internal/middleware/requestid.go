package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ReqIDKey    = "reqID"
	reqIDHeader = "X-Request-ID"
)

// RequestID propagates an inbound request id or mints a fresh one, and
// mirrors it on the response so clients can correlate logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(reqIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set(reqIDHeader, rid)
		c.Locals(ReqIDKey, rid)
		return c.Next()
	}
}
