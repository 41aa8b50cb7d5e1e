package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-Id"
	LocalRequestID  = "request_id"
)

// RequestID generates or preserves the request id and echoes it back.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalRequestID, rid)
		c.Set(HeaderRequestID, rid)
		// also on the request headers so adaptor/http handlers can read it
		c.Request().Header.Set(HeaderRequestID, rid)

		return c.Next()
	}
}

// RequestIDFromFiber retrieves the request ID from Fiber locals.
func RequestIDFromFiber(c fiber.Ctx) (string, bool) {
	v := c.Locals(LocalRequestID)
	s, ok := v.(string)
	return s, ok && s != ""
}
