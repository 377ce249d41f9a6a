package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/handler"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

func (r *Router) registerIncidentRoutes(
	api fiber.Router,
	ih *handler.IncidentHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	incidents := api.Group("/incidents", sessionRequired)

	incidents.Get("/", requirePerm(authorize.ResourceIncident, authorize.ActionList), ih.List)
	incidents.Post("/", requirePerm(authorize.ResourceIncident, authorize.ActionCreate), ih.Create)

	in := incidents.Group("/:id")
	in.Get("/", requirePerm(authorize.ResourceIncident, authorize.ActionRead), ih.Get)
	in.Put("/", requirePerm(authorize.ResourceIncident, authorize.ActionUpdate), ih.Update)
	in.Delete("/", requirePerm(authorize.ResourceIncident, authorize.ActionDelete), ih.Delete)

	// File attachments
	in.Get("/files", requirePerm(authorize.ResourceIncidentFile, authorize.ActionRead), ih.ListFiles)
	in.Post("/files", requirePerm(authorize.ResourceIncidentFile, authorize.ActionCreate), ih.AddFile)
	in.Delete("/files/:fileId", requirePerm(authorize.ResourceIncidentFile, authorize.ActionDelete), ih.DeleteFile)
}
