package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/application/plot/dto"
	"github.com/coffeetech/farms/internal/application/plot/usecases"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/utils"
)

type PlotHandler struct {
	createPlotUC            createPlotUseCase
	updatePlotGeneralInfoUC updatePlotGeneralInfoUseCase
	updatePlotLocationUC    updatePlotLocationUseCase
	listPlotsUC             listPlotsUseCase
	getPlotUC               getPlotUseCase
	deletePlotUC            deletePlotUseCase
	logger                  logger.Interface
}

func NewPlotHandler(
	createPlotUC createPlotUseCase,
	updatePlotGeneralInfoUC updatePlotGeneralInfoUseCase,
	updatePlotLocationUC updatePlotLocationUseCase,
	listPlotsUC listPlotsUseCase,
	getPlotUC getPlotUseCase,
	deletePlotUC deletePlotUseCase,
	logger logger.Interface,
) *PlotHandler {
	return &PlotHandler{
		createPlotUC:            createPlotUC,
		updatePlotGeneralInfoUC: updatePlotGeneralInfoUC,
		updatePlotLocationUC:    updatePlotLocationUC,
		listPlotsUC:             listPlotsUC,
		getPlotUC:               getPlotUC,
		deletePlotUC:            deletePlotUC,
		logger:                  logger,
	}
}

// CreatePlot handles POST /plots/create-plot
func (h *PlotHandler) CreatePlot(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.CreatePlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plot", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createPlotUC.Execute(c.Request.Context(), usecases.CreatePlotCommand{
		UserID:          user.UserID,
		FarmID:          req.FarmID,
		Name:            req.Name,
		CoffeeVarietyID: req.CoffeeVarietyID,
		Location: plot.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Altitude:  req.Altitude,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Lote creado correctamente"
	if result.Reactivated {
		message = "Lote reactivado y actualizado correctamente"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// UpdatePlotGeneralInfo handles POST /plots/update-plot-general-info
func (h *PlotHandler) UpdatePlotGeneralInfo(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePlotGeneralInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plot general info", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updatePlotGeneralInfoUC.Execute(c.Request.Context(), usecases.UpdatePlotGeneralInfoCommand{
		UserID:          user.UserID,
		PlotID:          req.PlotID,
		Name:            req.Name,
		CoffeeVarietyID: req.CoffeeVarietyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Información general del lote actualizada correctamente", result)
}

// UpdatePlotLocation handles POST /plots/update-plot-location
func (h *PlotHandler) UpdatePlotLocation(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePlotLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plot location", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updatePlotLocationUC.Execute(c.Request.Context(), usecases.UpdatePlotLocationCommand{
		UserID: user.UserID,
		PlotID: req.PlotID,
		Location: plot.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Altitude:  req.Altitude,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ubicación del lote actualizada correctamente", result)
}

// ListPlots handles GET /plots/list-plots/:farm_id
func (h *PlotHandler) ListPlots(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintParam(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlotsUC.Execute(c.Request.Context(), usecases.ListPlotsQuery{
		UserID: user.UserID,
		FarmID: farmID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lista de lotes obtenida exitosamente", result)
}

// GetPlot handles GET /plots/get-plot/:plot_id
func (h *PlotHandler) GetPlot(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	plotID, err := utils.ParseUintParam(c, "plot_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlotUC.Execute(c.Request.Context(), usecases.GetPlotQuery{
		UserID: user.UserID,
		PlotID: plotID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lote obtenido exitosamente", result)
}

// DeletePlot handles POST /plots/delete-plot/:plot_id
func (h *PlotHandler) DeletePlot(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	plotID, err := utils.ParseUintParam(c, "plot_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlotUC.Execute(c.Request.Context(), usecases.DeletePlotCommand{
		UserID: user.UserID,
		PlotID: plotID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lote eliminado correctamente", nil)
}
