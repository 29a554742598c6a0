package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/interfaces/http/middleware"
	"github.com/coffeetech/farms/internal/interfaces/http/routes"
	"github.com/coffeetech/farms/internal/shared/utils"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	utils.RegisterValidators()

	r := c.engine
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(c.log.Named("recovery")))
	r.Use(middleware.Logger(c.log.Named("http")))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	if c.cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(c.metrics))
		r.GET(c.metrics.Path(), gin.WrapH(c.metrics.Handler()))
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("")
	if c.cfg.RateLimit.Enabled {
		api.Use(c.rateLimiter.Limit())
	}
	session := c.authMiddleware.RequireSession()

	routes.SetupFarmRoutes(api, &routes.FarmRouteConfig{
		FarmHandler: c.hdlrs.farmHandler,
		RequireAuth: session,
	})
	routes.SetupPlotRoutes(api, &routes.PlotRouteConfig{
		PlotHandler: c.hdlrs.plotHandler,
		RequireAuth: session,
	})
	routes.SetupCollaboratorRoutes(api, &routes.CollaboratorRouteConfig{
		CollaboratorHandler: c.hdlrs.collaboratorHandler,
		RequireAuth:         session,
	})
	routes.SetupUtilsRoutes(api, c.hdlrs.utilsHandler)
}
