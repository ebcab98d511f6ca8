package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key holding the RayID.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a RayID to every request. An incoming
// X-Ray-ID header is kept so that traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromContext returns the RayID of the request, or "" outside the middleware.
func FromContext(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
