package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/plot/dto"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgListPlotsDenied = "No tienes permiso para ver los lotes de esta finca"
	msgGetPlotDenied   = "No tienes permiso para ver este lote"
)

type ListPlotsQuery struct {
	UserID uint
	FarmID uint
}

type ListPlotsUseCase struct {
	plots  plot.Repository
	guard  *access.Guard
	logger logger.Interface
}

func NewListPlotsUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *ListPlotsUseCase {
	return &ListPlotsUseCase{plots: plots, guard: guard, logger: logger}
}

func (uc *ListPlotsUseCase) Execute(ctx context.Context, query ListPlotsQuery) (*dto.ListPlotsResponse, error) {
	uc.logger.Infow("listing plots", "user_id", query.UserID, "farm_id", query.FarmID)

	if _, err := uc.guard.Authorize(ctx, query.UserID, query.FarmID, access.Policy{
		ActiveFarmOnly:   true,
		FarmNotFound:     msgFarmNotActive,
		NotAssociated:    msgListPlotsDenied,
		Permission:       collaborator.PermReadPlots,
		PermissionDenied: msgListPlotsDenied,
	}); err != nil {
		return nil, err
	}

	activePlot, err := uc.guard.ActiveState(ctx, uc.guard.States().Plot)
	if err != nil {
		return nil, err
	}

	details, err := uc.plots.ListByFarm(ctx, query.FarmID, activePlot)
	if err != nil {
		uc.logger.Errorw("failed to list plots", "farm_id", query.FarmID, "error", err)
		return nil, errors.NewInternalError("Error al obtener la lista de lotes")
	}

	return &dto.ListPlotsResponse{Plots: dto.ToPlotDetailDTOs(details)}, nil
}

type GetPlotQuery struct {
	UserID uint
	PlotID uint
}

type GetPlotUseCase struct {
	plotGuard
}

func NewGetPlotUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *GetPlotUseCase {
	return &GetPlotUseCase{plotGuard{plots: plots, guard: guard, logger: logger}}
}

func (uc *GetPlotUseCase) Execute(ctx context.Context, query GetPlotQuery) (*dto.GetPlotResponse, error) {
	a, err := uc.authorize(ctx, query.UserID, query.PlotID, access.Policy{
		ActiveFarmOnly:   true,
		FarmNotFound:     "La finca asociada al lote no existe o no está activa",
		NotAssociated:    msgGetPlotDenied,
		Permission:       collaborator.PermReadPlots,
		PermissionDenied: msgGetPlotDenied,
	})
	if err != nil {
		return nil, err
	}

	detail, err := uc.plots.GetDetail(ctx, a.plot.ID(), a.activeStateID)
	if err != nil {
		uc.logger.Errorw("failed to get plot detail", "plot_id", query.PlotID, "error", err)
		return nil, errors.NewInternalError("Error al obtener el lote")
	}
	if detail == nil {
		return nil, errors.NewNotFoundError(msgPlotNotActive)
	}

	return &dto.GetPlotResponse{Plot: dto.ToPlotDetailDTO(detail)}, nil
}
