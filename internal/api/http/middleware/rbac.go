package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/pkg/authorize"
)

// RequirePermission checks that the session identity's role may perform
// the given action on the given resource. Must run after SessionRequired.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := IdentityFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		if err := auth.MustEnforce(c.Context(), authorize.Role(id.Role), resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
