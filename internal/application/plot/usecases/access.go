package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const msgPlotNotActive = "El lote no existe o no está activo"

// plotGuard resolves an active plot and then authorizes the requester on its
// farm.
type plotGuard struct {
	plots  plot.Repository
	guard  *access.Guard
	logger logger.Interface
}

type plotAccess struct {
	plot          *plot.Plot
	membership    *access.Membership
	activeStateID uint
}

func (g *plotGuard) authorize(ctx context.Context, userID, plotID uint, policy access.Policy) (*plotAccess, error) {
	activePlot, err := g.guard.ActiveState(ctx, g.guard.States().Plot)
	if err != nil {
		return nil, err
	}

	p, err := g.plots.GetByIDInState(ctx, plotID, activePlot)
	if err != nil {
		g.logger.Errorw("failed to load plot", "plot_id", plotID, "error", err)
		return nil, errors.NewInternalError("failed to load plot")
	}
	if p == nil {
		g.logger.Warnw("plot not found or inactive", "plot_id", plotID)
		return nil, errors.NewNotFoundError(msgPlotNotActive)
	}

	m, err := g.guard.Authorize(ctx, userID, p.FarmID(), policy)
	if err != nil {
		return nil, err
	}
	return &plotAccess{plot: p, membership: m, activeStateID: activePlot}, nil
}

// variety returns the coffee variety or a 400 built by notFound.
func variety(ctx context.Context, plots plot.Repository, log logger.Interface, id uint, notFound func(uint) string) (*plot.CoffeeVariety, error) {
	v, err := plots.GetCoffeeVariety(ctx, id)
	if err != nil {
		log.Errorw("failed to load coffee variety", "coffee_variety_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load coffee variety")
	}
	if v == nil {
		log.Warnw("coffee variety not found", "coffee_variety_id", id)
		return nil, errors.NewValidationError(notFound(id))
	}
	return v, nil
}
