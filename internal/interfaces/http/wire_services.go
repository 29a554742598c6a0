package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/config"
	"github.com/coffeetech/farms/internal/infrastructure/metrics"
	"github.com/coffeetech/farms/internal/infrastructure/ratelimit"
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	"github.com/coffeetech/farms/internal/interfaces/http/middleware"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const redisPingTimeout = 3 * time.Second

// initInfrastructure builds metrics, the user-service client, the transaction
// manager and the edge middlewares.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.metrics = metrics.NewCollector(cfg.Metrics)
	c.userClient = userservice.NewClient(cfg.UserService, log.Named("userservice"), userservice.WithObserver(c.metrics))
	c.tx = db.NewTransactionManager(c.db)

	c.authMiddleware = middleware.NewAuthMiddleware(c.userClient, log.Named("auth"))
	c.rateLimiter = middleware.NewRateLimiter(c.newLimiter(), log.Named("ratelimit"))
}

// newLimiter prefers the shared Redis counter and falls back to an in-process
// limiter when Redis is disabled or unreachable at startup.
func (c *Container) newLimiter() ratelimit.RateLimiter {
	perMinute := c.cfg.RateLimit.RequestsPerMinute

	if c.redis == nil && c.cfg.Redis.Enabled {
		c.redis = initRedis(c.cfg, c.log)
	}
	if c.redis != nil {
		return ratelimit.NewRedisRateLimiter(c.redis, perMinute, time.Minute)
	}

	c.localLimiter = ratelimit.NewLocalRateLimiter(perMinute)
	return c.localLimiter
}

// initRedis connects to the configured Redis, returning nil when it cannot be
// reached.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, using in-process rate limiter", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())
	return client
}

func (c *Container) initAccess() {
	lookup := state.NewLookup(c.repos.stateRepo)
	c.guard = access.NewGuard(c.repos.farmRepo, c.repos.userRoleFarmRepo, lookup, c.userClient, c.log.Named("access"))
}
