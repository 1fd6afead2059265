package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request and response header carrying the RayID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key holding the RayID.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a RayID. A valid
// incoming X-Ray-ID is kept so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

// FromCtx returns the RayID of the request, or "".
func FromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
