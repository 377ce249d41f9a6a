package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/handler"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

func (r *Router) registerDashboardRoutes(
	api fiber.Router,
	dh *handler.DashboardHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	dashboard := api.Group("/dashboard", sessionRequired,
		requirePerm(authorize.ResourceDashboard, authorize.ActionRead))

	dashboard.Get("/stats", dh.Stats)
	dashboard.Get("/calendar", dh.Calendar)
}
