package app

import (
	"go.uber.org/fx"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/service/auth"
	"github.com/dentio/dentio_backend/internal/service/dashboard"
	"github.com/dentio/dentio_backend/internal/service/incident"
	"github.com/dentio/dentio_backend/internal/service/patient"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideIncidentService,
		ProvideDashboardService,
	),
)

func ProvideAuthService(db *records.Client, cfg *config.Config) auth.Service {
	return auth.New(db, cfg.Auth)
}

func ProvidePatientService(db *records.Client) patient.Service {
	return patient.New(db)
}

func ProvideIncidentService(db *records.Client) incident.Service {
	return incident.New(db)
}

func ProvideDashboardService(db *records.Client) dashboard.Service {
	return dashboard.New(db)
}
