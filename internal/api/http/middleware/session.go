package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/service/auth"
)

const LocalIdentity = "identity"

// SessionRequired restores the stored session identity and rejects the
// request when no session exists. The identity is trusted as stored;
// there is no token to verify.
func SessionRequired(authSvc auth.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := authSvc.Current(c.Context())
		if err != nil {
			if errors.Is(err, auth.ErrNotLoggedIn) {
				return fiber.ErrUnauthorized
			}
			return err
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// IdentityFromFiber retrieves the session identity placed in locals by
// SessionRequired.
func IdentityFromFiber(c fiber.Ctx) (*records.Identity, bool) {
	v := c.Locals(LocalIdentity)
	id, ok := v.(*records.Identity)
	return id, ok && id != nil
}
