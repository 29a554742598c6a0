package http

import (
	catalogUsecases "github.com/coffeetech/farms/internal/application/catalog/usecases"
	collaboratorUsecases "github.com/coffeetech/farms/internal/application/collaborator/usecases"
	farmUsecases "github.com/coffeetech/farms/internal/application/farm/usecases"
	plotUsecases "github.com/coffeetech/farms/internal/application/plot/usecases"
)

// allUseCases holds every use case the handlers call.
type allUseCases struct {
	// Farm
	createFarm    *farmUsecases.CreateFarmUseCase
	listFarms     *farmUsecases.ListFarmsUseCase
	getFarm       *farmUsecases.GetFarmUseCase
	updateFarm    *farmUsecases.UpdateFarmUseCase
	deleteFarm    *farmUsecases.DeleteFarmUseCase
	getFarmDetail *farmUsecases.GetFarmDetailUseCase

	// Plot
	createPlot            *plotUsecases.CreatePlotUseCase
	updatePlotGeneralInfo *plotUsecases.UpdatePlotGeneralInfoUseCase
	updatePlotLocation    *plotUsecases.UpdatePlotLocationUseCase
	listPlots             *plotUsecases.ListPlotsUseCase
	getPlot               *plotUsecases.GetPlotUseCase
	deletePlot            *plotUsecases.DeletePlotUseCase

	// Collaborator
	listCollaborators    *collaboratorUsecases.ListCollaboratorsUseCase
	editCollaboratorRole *collaboratorUsecases.EditCollaboratorRoleUseCase
	deleteCollaborator   *collaboratorUsecases.DeleteCollaboratorUseCase

	// Catalog
	listAreaUnits       *catalogUsecases.ListAreaUnitsUseCase
	listCoffeeVarieties *catalogUsecases.ListCoffeeVarietiesUseCase
}

func newUseCases(c *Container) *allUseCases {
	repos := c.repos
	guard := c.guard
	users := c.userClient
	log := c.log

	farmLog := log.Named("farm")
	plotLog := log.Named("plot")
	collabLog := log.Named("collaborator")

	return &allUseCases{
		createFarm:    farmUsecases.NewCreateFarmUseCase(repos.farmRepo, repos.userRoleFarmRepo, guard, users, c.tx, farmLog),
		listFarms:     farmUsecases.NewListFarmsUseCase(repos.farmRepo, guard, users, farmLog),
		getFarm:       farmUsecases.NewGetFarmUseCase(repos.farmRepo, guard, users, farmLog),
		updateFarm:    farmUsecases.NewUpdateFarmUseCase(repos.farmRepo, guard, farmLog),
		deleteFarm:    farmUsecases.NewDeleteFarmUseCase(repos.farmRepo, repos.userRoleFarmRepo, guard, c.tx, farmLog),
		getFarmDetail: farmUsecases.NewGetFarmDetailUseCase(repos.farmRepo, farmLog),

		createPlot:            plotUsecases.NewCreatePlotUseCase(repos.plotRepo, guard, plotLog),
		updatePlotGeneralInfo: plotUsecases.NewUpdatePlotGeneralInfoUseCase(repos.plotRepo, guard, plotLog),
		updatePlotLocation:    plotUsecases.NewUpdatePlotLocationUseCase(repos.plotRepo, guard, plotLog),
		listPlots:             plotUsecases.NewListPlotsUseCase(repos.plotRepo, guard, plotLog),
		getPlot:               plotUsecases.NewGetPlotUseCase(repos.plotRepo, guard, plotLog),
		deletePlot:            plotUsecases.NewDeletePlotUseCase(repos.plotRepo, guard, plotLog),

		listCollaborators:    collaboratorUsecases.NewListCollaboratorsUseCase(guard, repos.userRoleFarmRepo, users, collabLog),
		editCollaboratorRole: collaboratorUsecases.NewEditCollaboratorRoleUseCase(guard, repos.userRoleFarmRepo, users, c.tx, collabLog),
		deleteCollaborator:   collaboratorUsecases.NewDeleteCollaboratorUseCase(guard, repos.userRoleFarmRepo, users, c.tx, collabLog),

		listAreaUnits:       catalogUsecases.NewListAreaUnitsUseCase(repos.farmRepo, log.Named("catalog")),
		listCoffeeVarieties: catalogUsecases.NewListCoffeeVarietiesUseCase(repos.plotRepo, log.Named("catalog")),
	}
}
