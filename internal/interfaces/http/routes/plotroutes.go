package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/interfaces/http/handlers"
)

// PlotRouteConfig holds dependencies for plot routes.
type PlotRouteConfig struct {
	PlotHandler *handlers.PlotHandler
	RequireAuth gin.HandlerFunc
}

func SetupPlotRoutes(r gin.IRouter, cfg *PlotRouteConfig) {
	plots := r.Group("/plots")
	plots.Use(cfg.RequireAuth)
	{
		plots.POST("/create-plot", cfg.PlotHandler.CreatePlot)
		plots.POST("/update-plot-general-info", cfg.PlotHandler.UpdatePlotGeneralInfo)
		plots.POST("/update-plot-location", cfg.PlotHandler.UpdatePlotLocation)
		plots.GET("/list-plots/:farm_id", cfg.PlotHandler.ListPlots)
		plots.GET("/get-plot/:plot_id", cfg.PlotHandler.GetPlot)
		plots.POST("/delete-plot/:plot_id", cfg.PlotHandler.DeletePlot)
	}
}
