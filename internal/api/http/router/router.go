package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/api/http/handler"
	"github.com/dentio/dentio_backend/internal/api/http/middleware"
	"github.com/dentio/dentio_backend/internal/service/auth"
	"github.com/dentio/dentio_backend/internal/service/dashboard"
	"github.com/dentio/dentio_backend/internal/service/incident"
	"github.com/dentio/dentio_backend/internal/service/patient"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Auth         authorize.IAuthorization
	AuthSvc      auth.Service
	PatientSvc   patient.Service
	IncidentSvc  incident.Service
	DashboardSvc dashboard.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	sessionRequired := middleware.SessionRequired(r.p.AuthSvc)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.IncidentSvc)
	incidentH := handler.NewIncidentHandler(r.p.IncidentSvc)
	dashboardH := handler.NewDashboardHandler(r.p.DashboardSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, sessionRequired)
	r.registerPatientRoutes(api, patientH, sessionRequired, requirePerm)
	r.registerIncidentRoutes(api, incidentH, sessionRequired, requirePerm)
	r.registerDashboardRoutes(api, dashboardH, sessionRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
