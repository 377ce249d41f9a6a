package store

import (
	"fmt"

	"github.com/dentio/dentio_backend/config"
	redispkg "github.com/dentio/dentio_backend/pkg/redis"
)

// FromConfig builds the backend named by config, wrapped with metrics.
// The returned closer releases any connection the backend holds; for
// memory and file it is a no-op.
func FromConfig(cfg *config.Config) (Store, func() error, error) {
	name := cfg.Store.Backend
	if name == "" {
		name = "file"
	}

	noop := func() error { return nil }

	switch name {
	case "memory":
		return NewInstrumented(NewMemory(), name), noop, nil
	case "file":
		f, err := NewFile(cfg.Store.File.Dir)
		if err != nil {
			return nil, nil, err
		}
		return NewInstrumented(f, name), noop, nil
	case "redis":
		rdb, err := redispkg.NewFromCentral(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewInstrumented(NewRedis(rdb), name), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", name)
	}
}
