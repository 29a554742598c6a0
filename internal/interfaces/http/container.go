package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/infrastructure/config"
	"github.com/coffeetech/farms/internal/infrastructure/metrics"
	"github.com/coffeetech/farms/internal/infrastructure/ratelimit"
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	"github.com/coffeetech/farms/internal/interfaces/http/middleware"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// Container holds every component of the HTTP service, wires them together
// and releases them in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Shared services
	metrics    *metrics.Collector
	userClient *userservice.Client
	tx         *db.TransactionManager
	guard      *access.Guard

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	localLimiter   *ratelimit.LocalRateLimiter
}

// Option overrides a container dependency, mainly for tests.
type Option func(*Container)

// WithRedisClient uses client instead of dialing the configured Redis.
func WithRedisClient(client *redis.Client) Option {
	return func(c *Container) {
		c.redis = client
	}
}

// NewContainer wires the service on top of an open database.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface, opts ...Option) *Container {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.initInfrastructure()
	c.repos = newRepositories(database, log)
	c.initAccess()
	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c.ucs, log)

	return c
}

// Engine returns the gin engine. Call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases background resources. The database is owned by the
// caller.
func (c *Container) Shutdown(ctx context.Context) {
	if c.localLimiter != nil {
		c.localLimiter.Stop()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("http container shut down")
}
