package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(
	api fiber.Router,
	ah *handler.AuthHandler,
	sessionRequired fiber.Handler,
) {
	auth := api.Group("/auth")

	auth.Post("/login", ah.Login)
	auth.Post("/logout", ah.Logout)
	auth.Get("/me", sessionRequired, ah.Me)
}
