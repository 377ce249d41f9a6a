package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dentio/dentio_backend/config"
	"github.com/dentio/dentio_backend/internal/records"
	"github.com/dentio/dentio_backend/internal/store"
	"github.com/dentio/dentio_backend/pkg/authorize"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRecordsClient),
	fx.Provide(ProvideAuthorization),
)

// ProvideStore builds the slot store named by config. The redis backend
// opens its own connection and closes it on shutdown; memory and file
// need no lifecycle.
func ProvideStore(lc fx.Lifecycle, cfg *config.Config) (store.Store, error) {
	s, closer, err := store.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing record store")
			return closer()
		},
	})
	return s, nil
}

func ProvideRecordsClient(s store.Store) *records.Client {
	return records.NewClient(s, slog.Default())
}

func ProvideAuthorization() (authorize.IAuthorization, error) {
	enforcer, err := authorize.NewEnforcer()
	if err != nil {
		return nil, err
	}
	baseAuth, err := authorize.NewAuthorization(enforcer)
	if err != nil {
		return nil, err
	}
	return authorize.NewAuditedAuthorization(baseAuth, slog.Default()), nil
}
