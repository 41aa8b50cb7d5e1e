package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// Report submissions and chat messages are the only write-heavy endpoints;
// 20 requests per 30s is generous for a patient filling in a daily form.
const (
	limiterMax    = 20
	limiterWindow = 30 * time.Second
)

// NewLimiterWithRedis builds a sliding-window rate limiter backed by the
// shared Redis connection, so limits hold across replicas.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage:           fiberredis.NewFromConnection(rdb),
		Max:               limiterMax,
		Expiration:        limiterWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
