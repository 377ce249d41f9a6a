package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"

	"github.com/dentio/dentio_backend/config"
)

// NewLimiter rate-limits by client IP with a sliding window. When a
// Redis address is configured the counters live there so multiple
// instances share one budget; otherwise they stay in process memory.
func NewLimiter(cfg *config.Config) fiber.Handler {
	lc := limiter.Config{
		// sliding window
		Max:               20,
		Expiration:        30 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	}

	if cfg.Redis.Addr != "" {
		lc.Storage = fiberredis.New(fiberredis.Config{
			Addrs:    []string{cfg.Redis.Addr},
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			Database: cfg.Redis.DB,
		})
	}

	return limiter.New(lc)
}
