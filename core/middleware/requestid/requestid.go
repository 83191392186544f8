package requestid

import (
	"prefix-list-updater/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the request id.
const HeaderName = "X-Request-ID"

// New returns a middleware that assigns every request an id. A well-formed
// UUID supplied by the caller is kept; anything else is replaced.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Locals(logger.RequestIDKey, id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}
