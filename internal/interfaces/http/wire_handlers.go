package http

import (
	"github.com/coffeetech/farms/internal/interfaces/http/handlers"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	farmHandler         *handlers.FarmHandler
	plotHandler         *handlers.PlotHandler
	collaboratorHandler *handlers.CollaboratorHandler
	utilsHandler        *handlers.UtilsHandler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		farmHandler: handlers.NewFarmHandler(
			ucs.createFarm, ucs.listFarms, ucs.getFarm, ucs.updateFarm, ucs.deleteFarm, ucs.getFarmDetail,
			log.Named("handler.farm"),
		),
		plotHandler: handlers.NewPlotHandler(
			ucs.createPlot, ucs.updatePlotGeneralInfo, ucs.updatePlotLocation, ucs.listPlots, ucs.getPlot, ucs.deletePlot,
			log.Named("handler.plot"),
		),
		collaboratorHandler: handlers.NewCollaboratorHandler(
			ucs.listCollaborators, ucs.editCollaboratorRole, ucs.deleteCollaborator,
			log.Named("handler.collaborator"),
		),
		utilsHandler: handlers.NewUtilsHandler(ucs.listAreaUnits, ucs.listCoffeeVarieties),
	}
}
