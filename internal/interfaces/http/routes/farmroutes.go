package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/interfaces/http/handlers"
)

// FarmRouteConfig holds dependencies for farm routes.
type FarmRouteConfig struct {
	FarmHandler *handlers.FarmHandler
	RequireAuth gin.HandlerFunc
}

// SetupFarmRoutes configures /farm and the internal /farms-service lookup.
func SetupFarmRoutes(r gin.IRouter, cfg *FarmRouteConfig) {
	farms := r.Group("/farm")
	farms.Use(cfg.RequireAuth)
	{
		farms.POST("/create-farm", cfg.FarmHandler.CreateFarm)
		farms.POST("/list-farm", cfg.FarmHandler.ListFarms)
		farms.GET("/get-farm/:farm_id", cfg.FarmHandler.GetFarm)
		farms.POST("/update-farm", cfg.FarmHandler.UpdateFarm)
		farms.POST("/delete-farm/:farm_id", cfg.FarmHandler.DeleteFarm)
	}

	// Service-to-service, no session.
	internal := r.Group("/farms-service")
	{
		internal.GET("/get-farm/:farm_id", cfg.FarmHandler.GetFarmDetail)
	}
}
