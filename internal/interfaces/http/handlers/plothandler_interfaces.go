package handlers

import (
	"context"

	"github.com/coffeetech/farms/internal/application/plot/dto"
	"github.com/coffeetech/farms/internal/application/plot/usecases"
)

type createPlotUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlotCommand) (*dto.PlotDTO, error)
}

type updatePlotGeneralInfoUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlotGeneralInfoCommand) (*dto.PlotGeneralInfoDTO, error)
}

type updatePlotLocationUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlotLocationCommand) (*dto.PlotLocationDTO, error)
}

type listPlotsUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlotsQuery) (*dto.ListPlotsResponse, error)
}

type getPlotUseCase interface {
	Execute(ctx context.Context, query usecases.GetPlotQuery) (*dto.GetPlotResponse, error)
}

type deletePlotUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeletePlotCommand) error
}
