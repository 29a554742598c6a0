package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const msgDeletePlotDenied = "No tienes permiso para eliminar este lote"

type DeletePlotCommand struct {
	UserID uint
	PlotID uint
}

type DeletePlotUseCase struct {
	plotGuard
}

func NewDeletePlotUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *DeletePlotUseCase {
	return &DeletePlotUseCase{plotGuard{plots: plots, guard: guard, logger: logger}}
}

func (uc *DeletePlotUseCase) Execute(ctx context.Context, cmd DeletePlotCommand) error {
	uc.logger.Infow("deleting plot", "user_id", cmd.UserID, "plot_id", cmd.PlotID)

	a, err := uc.authorize(ctx, cmd.UserID, cmd.PlotID, access.Policy{
		FarmNotFound:     msgPlotFarmMissing,
		NotAssociated:    msgDeletePlotDenied,
		Permission:       collaborator.PermDeletePlot,
		PermissionDenied: msgDeletePlotDenied,
	})
	if err != nil {
		return err
	}

	inactivePlot, err := uc.guard.InactiveState(ctx, uc.guard.States().Plot)
	if err != nil {
		return err
	}

	a.plot.SetState(inactivePlot)
	if err := uc.plots.Update(ctx, a.plot); err != nil {
		uc.logger.Errorw("failed to delete plot", "plot_id", cmd.PlotID, "error", err)
		return errors.NewInternalError("Error al eliminar el lote")
	}

	uc.logger.Infow("plot deactivated", "plot_id", cmd.PlotID)
	return nil
}
