package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/shared/logger"
)

func TestListPlots(t *testing.T) {
	f := newFixture()
	f.plots.Seed("Uno", 1, someplace, f.farmID, testutil.ActiveStateID)
	f.plots.Seed("Dos", 2, someplace, f.farmID, testutil.ActiveStateID)
	f.plots.Seed("Viejo", 2, someplace, f.farmID, testutil.InactiveStateID)
	uc := NewListPlotsUseCase(f.plots, f.guard, logger.NewNop())

	resp, err := uc.Execute(context.Background(), ListPlotsQuery{UserID: operatorUser, FarmID: f.farmID})
	require.NoError(t, err)
	require.Len(t, resp.Plots, 2)
	assert.Equal(t, "Uno", resp.Plots[0].Name)
	assert.Equal(t, "Castillo", resp.Plots[0].CoffeeVarietyName)
	assert.Equal(t, "Caturra", resp.Plots[1].CoffeeVarietyName)
}

func TestListPlots_Empty(t *testing.T) {
	f := newFixture()

	resp, err := NewListPlotsUseCase(f.plots, f.guard, logger.NewNop()).Execute(context.Background(), ListPlotsQuery{UserID: ownerUser, FarmID: f.farmID})
	require.NoError(t, err)
	assert.NotNil(t, resp.Plots)
	assert.Empty(t, resp.Plots)
}

func TestListPlots_Rejections(t *testing.T) {
	f := newFixture()
	uc := NewListPlotsUseCase(f.plots, f.guard, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListPlotsQuery{UserID: strangerUser, FarmID: f.farmID})
	assertAppError(t, err, http.StatusForbidden, "No tienes permiso para ver los lotes de esta finca")

	delete(f.perms, 200)
	_, err = uc.Execute(context.Background(), ListPlotsQuery{UserID: operatorUser, FarmID: f.farmID})
	assertAppError(t, err, http.StatusForbidden, "No tienes permiso para ver los lotes de esta finca")

	f.deactivateFarm()
	_, err = uc.Execute(context.Background(), ListPlotsQuery{UserID: ownerUser, FarmID: f.farmID})
	assertAppError(t, err, http.StatusNotFound, "La finca no existe o no está activa")
}

func TestGetPlot(t *testing.T) {
	f := newFixture()
	p := f.plots.Seed("Uno", 3, someplace, f.farmID, testutil.ActiveStateID)
	uc := NewGetPlotUseCase(f.plots, f.guard, logger.NewNop())

	resp, err := uc.Execute(context.Background(), GetPlotQuery{UserID: operatorUser, PlotID: p.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Uno", resp.Plot.Name)
	assert.Equal(t, "Colombia", resp.Plot.CoffeeVarietyName)
	assert.Equal(t, f.farmID, resp.Plot.FarmID)

	_, err = uc.Execute(context.Background(), GetPlotQuery{UserID: strangerUser, PlotID: p.ID()})
	assertAppError(t, err, http.StatusForbidden, "No tienes permiso para ver este lote")

	f.deactivateFarm()
	_, err = uc.Execute(context.Background(), GetPlotQuery{UserID: operatorUser, PlotID: p.ID()})
	assertAppError(t, err, http.StatusNotFound, "La finca asociada al lote no existe o no está activa")
}

func TestDeletePlot(t *testing.T) {
	f := newFixture()
	p := f.plots.Seed("Uno", 1, someplace, f.farmID, testutil.ActiveStateID)
	uc := NewDeletePlotUseCase(f.plots, f.guard, logger.NewNop())

	err := uc.Execute(context.Background(), DeletePlotCommand{UserID: operatorUser, PlotID: p.ID()})
	assertAppError(t, err, http.StatusForbidden, "No tienes permiso para eliminar este lote")
	assert.Equal(t, testutil.ActiveStateID, f.plots.Get(p.ID()).PlotStateID())

	require.NoError(t, uc.Execute(context.Background(), DeletePlotCommand{UserID: ownerUser, PlotID: p.ID()}))
	assert.Equal(t, testutil.InactiveStateID, f.plots.Get(p.ID()).PlotStateID())

	err = uc.Execute(context.Background(), DeletePlotCommand{UserID: ownerUser, PlotID: p.ID()})
	assertAppError(t, err, http.StatusNotFound, "El lote no existe o no está activo")
}
