package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/plot/dto"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgPlotFarmMissing = "La finca asociada al lote no existe"
	msgEditPlotDenied  = "No tienes permiso para editar un lote en esta finca"
)

var editPlotPolicy = access.Policy{
	FarmNotFound:     msgPlotFarmMissing,
	NotAssociated:    msgEditPlotDenied,
	Permission:       collaborator.PermEditPlot,
	PermissionDenied: msgEditPlotDenied,
}

type UpdatePlotGeneralInfoCommand struct {
	UserID          uint
	PlotID          uint
	Name            string
	CoffeeVarietyID uint
}

type UpdatePlotGeneralInfoUseCase struct {
	plotGuard
}

func NewUpdatePlotGeneralInfoUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *UpdatePlotGeneralInfoUseCase {
	return &UpdatePlotGeneralInfoUseCase{plotGuard{plots: plots, guard: guard, logger: logger}}
}

func (uc *UpdatePlotGeneralInfoUseCase) Execute(ctx context.Context, cmd UpdatePlotGeneralInfoCommand) (*dto.PlotGeneralInfoDTO, error) {
	uc.logger.Infow("updating plot general info", "user_id", cmd.UserID, "plot_id", cmd.PlotID)

	a, err := uc.authorize(ctx, cmd.UserID, cmd.PlotID, editPlotPolicy)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if err := plot.ValidateName(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.plots.ExistsByFarmAndName(ctx, a.plot.FarmID(), name, a.activeStateID, a.plot.ID())
	if err != nil {
		uc.logger.Errorw("failed to check plot name", "plot_id", cmd.PlotID, "error", err)
		return nil, errors.NewInternalError("Error al actualizar el lote")
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("Ya existe un lote con el nombre '%s' en esta finca", name))
	}

	v, err := variety(ctx, uc.plots, uc.logger, cmd.CoffeeVarietyID, func(id uint) string {
		return fmt.Sprintf("La variedad de café con ID %d no existe", id)
	})
	if err != nil {
		return nil, err
	}

	if err := a.plot.UpdateGeneralInfo(name, v.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.plots.Update(ctx, a.plot); err != nil {
		uc.logger.Errorw("failed to update plot", "plot_id", cmd.PlotID, "error", err)
		return nil, errors.NewInternalError("Error al actualizar el lote")
	}

	return &dto.PlotGeneralInfoDTO{
		PlotID:            a.plot.ID(),
		Name:              a.plot.Name(),
		CoffeeVarietyName: v.Name,
	}, nil
}

type UpdatePlotLocationCommand struct {
	UserID   uint
	PlotID   uint
	Location plot.Location
}

type UpdatePlotLocationUseCase struct {
	plotGuard
}

func NewUpdatePlotLocationUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *UpdatePlotLocationUseCase {
	return &UpdatePlotLocationUseCase{plotGuard{plots: plots, guard: guard, logger: logger}}
}

func (uc *UpdatePlotLocationUseCase) Execute(ctx context.Context, cmd UpdatePlotLocationCommand) (*dto.PlotLocationDTO, error) {
	uc.logger.Infow("updating plot location", "user_id", cmd.UserID, "plot_id", cmd.PlotID)

	a, err := uc.authorize(ctx, cmd.UserID, cmd.PlotID, editPlotPolicy)
	if err != nil {
		return nil, err
	}

	if err := a.plot.UpdateLocation(cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.plots.Update(ctx, a.plot); err != nil {
		uc.logger.Errorw("failed to update plot location", "plot_id", cmd.PlotID, "error", err)
		return nil, errors.NewInternalError("Error al actualizar la ubicación del lote")
	}

	return dto.ToPlotLocationDTO(a.plot), nil
}
