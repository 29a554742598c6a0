package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/interfaces/http/handlers"
)

// SetupUtilsRoutes configures the public catalog routes.
func SetupUtilsRoutes(r gin.IRouter, h *handlers.UtilsHandler) {
	utils := r.Group("/utils")
	{
		utils.GET("/area-units", h.ListAreaUnits)
		utils.GET("/list-coffee-varieties", h.ListCoffeeVarieties)
	}
}
