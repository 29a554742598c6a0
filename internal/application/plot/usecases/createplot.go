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
	msgFarmNotActive    = "La finca no existe o no está activa"
	msgAddPlotDenied    = "No tienes permiso para agregar un lote en esta finca"
	msgCreatePlotFailed = "Error al crear el lote"
)

type CreatePlotCommand struct {
	UserID          uint
	FarmID          uint
	Name            string
	CoffeeVarietyID uint
	Location        plot.Location
}

// CreatePlotUseCase adds a plot to a farm. An inactive plot with the same
// name is reactivated and overwritten instead of inserting a new row.
type CreatePlotUseCase struct {
	plots  plot.Repository
	guard  *access.Guard
	logger logger.Interface
}

func NewCreatePlotUseCase(plots plot.Repository, guard *access.Guard, logger logger.Interface) *CreatePlotUseCase {
	return &CreatePlotUseCase{
		plots:  plots,
		guard:  guard,
		logger: logger,
	}
}

func (uc *CreatePlotUseCase) Execute(ctx context.Context, cmd CreatePlotCommand) (*dto.PlotDTO, error) {
	uc.logger.Infow("creating plot", "user_id", cmd.UserID, "farm_id", cmd.FarmID, "name", cmd.Name)

	activePlot, err := uc.guard.ActiveState(ctx, uc.guard.States().Plot)
	if err != nil {
		return nil, err
	}
	inactivePlot, err := uc.guard.InactiveState(ctx, uc.guard.States().Plot)
	if err != nil {
		return nil, err
	}

	if _, err := uc.guard.Authorize(ctx, cmd.UserID, cmd.FarmID, access.Policy{
		ActiveFarmOnly:   true,
		FarmNotFound:     msgFarmNotActive,
		NotAssociated:    msgAddPlotDenied,
		Permission:       collaborator.PermAddPlot,
		PermissionDenied: msgAddPlotDenied,
	}); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if err := plot.ValidateName(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := cmd.Location.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.plots.ExistsByFarmAndName(ctx, cmd.FarmID, name, activePlot, 0)
	if err != nil {
		uc.logger.Errorw("failed to check plot name", "farm_id", cmd.FarmID, "error", err)
		return nil, errors.NewInternalError(msgCreatePlotFailed)
	}
	if exists {
		uc.logger.Warnw("plot name already in use", "farm_id", cmd.FarmID, "name", name)
		return nil, errors.NewConflictError(fmt.Sprintf("Ya existe un lote activo con el nombre '%s' en esta finca", name))
	}

	if _, err := variety(ctx, uc.plots, uc.logger, cmd.CoffeeVarietyID, func(id uint) string {
		return fmt.Sprintf("La variedad de café con ID '%d' no existe", id)
	}); err != nil {
		return nil, err
	}

	inactive, err := uc.plots.FindByFarmAndName(ctx, cmd.FarmID, name, inactivePlot)
	if err != nil {
		uc.logger.Errorw("failed to look up inactive plot", "farm_id", cmd.FarmID, "error", err)
		return nil, errors.NewInternalError(msgCreatePlotFailed)
	}
	if inactive != nil {
		return uc.reactivate(ctx, inactive, activePlot, cmd)
	}

	p, err := plot.NewPlot(name, cmd.CoffeeVarietyID, cmd.Location, cmd.FarmID, activePlot)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.plots.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plot", "farm_id", cmd.FarmID, "error", err)
		return nil, errors.NewInternalError(msgCreatePlotFailed)
	}

	uc.logger.Infow("plot created", "plot_id", p.ID(), "farm_id", cmd.FarmID)
	return dto.ToPlotDTO(p, false), nil
}

func (uc *CreatePlotUseCase) reactivate(ctx context.Context, p *plot.Plot, activePlot uint, cmd CreatePlotCommand) (*dto.PlotDTO, error) {
	if err := p.Reactivate(activePlot, cmd.CoffeeVarietyID, cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.plots.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to reactivate plot", "plot_id", p.ID(), "error", err)
		return nil, errors.NewInternalError("Error al reactivar el lote")
	}

	uc.logger.Infow("plot reactivated", "plot_id", p.ID(), "farm_id", cmd.FarmID)
	return dto.ToPlotDTO(p, true), nil
}
