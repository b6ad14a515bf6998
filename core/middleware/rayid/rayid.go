package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New creates a middleware that tags every request with a unique ray ID.
// The ID is stored in the request locals for handlers and loggers, and
// echoed back to the client in the X-Ray-Id response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rayID := uuid.NewString()
		c.Locals("ray_id", rayID)
		c.Set("X-Ray-Id", rayID)
		return c.Next()
	}
}
