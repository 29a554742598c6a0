package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/plot/dto"
	"github.com/coffeetech/farms/internal/application/plot/usecases"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/interfaces/http/handlers/testutil"
	"github.com/coffeetech/farms/internal/shared/errors"
)

type mockCreatePlotUC struct {
	result *dto.PlotDTO
	err    error
	got    usecases.CreatePlotCommand
}

func (m *mockCreatePlotUC) Execute(ctx context.Context, cmd usecases.CreatePlotCommand) (*dto.PlotDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdatePlotGeneralInfoUC struct {
	result *dto.PlotGeneralInfoDTO
	err    error
	got    usecases.UpdatePlotGeneralInfoCommand
}

func (m *mockUpdatePlotGeneralInfoUC) Execute(ctx context.Context, cmd usecases.UpdatePlotGeneralInfoCommand) (*dto.PlotGeneralInfoDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdatePlotLocationUC struct {
	result *dto.PlotLocationDTO
	err    error
	got    usecases.UpdatePlotLocationCommand
}

func (m *mockUpdatePlotLocationUC) Execute(ctx context.Context, cmd usecases.UpdatePlotLocationCommand) (*dto.PlotLocationDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListPlotsUC struct {
	result *dto.ListPlotsResponse
	err    error
	got    usecases.ListPlotsQuery
}

func (m *mockListPlotsUC) Execute(ctx context.Context, query usecases.ListPlotsQuery) (*dto.ListPlotsResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockGetPlotUC struct {
	result *dto.GetPlotResponse
	err    error
	got    usecases.GetPlotQuery
}

func (m *mockGetPlotUC) Execute(ctx context.Context, query usecases.GetPlotQuery) (*dto.GetPlotResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockDeletePlotUC struct {
	err error
	got usecases.DeletePlotCommand
}

func (m *mockDeletePlotUC) Execute(ctx context.Context, cmd usecases.DeletePlotCommand) error {
	m.got = cmd
	return m.err
}

type plotMocks struct {
	create   *mockCreatePlotUC
	general  *mockUpdatePlotGeneralInfoUC
	location *mockUpdatePlotLocationUC
	list     *mockListPlotsUC
	get      *mockGetPlotUC
	delete   *mockDeletePlotUC
}

func newTestPlotHandler() (*PlotHandler, *plotMocks) {
	m := &plotMocks{
		create:   &mockCreatePlotUC{},
		general:  &mockUpdatePlotGeneralInfoUC{},
		location: &mockUpdatePlotLocationUC{},
		list:     &mockListPlotsUC{},
		get:      &mockGetPlotUC{},
		delete:   &mockDeletePlotUC{},
	}
	return NewPlotHandler(m.create, m.general, m.location, m.list, m.get, m.delete, testutil.NewMockLogger()), m
}

func createPlotBody() map[string]any {
	return map[string]any{
		"name":              "Lote 1",
		"coffee_variety_id": 2,
		"latitude":          4.5,
		"longitude":         -75.6,
		"altitude":          1500,
		"farm_id":           7,
	}
}

func TestPlotHandler_CreatePlot(t *testing.T) {
	tests := []struct {
		name        string
		reactivated bool
		wantMsg     string
	}{
		{"new plot", false, "Lote creado correctamente"},
		{"reactivated plot", true, "Lote reactivado y actualizado correctamente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestPlotHandler()
			m.create.result = &dto.PlotDTO{PlotID: 11, Name: "Lote 1", FarmID: 7, Reactivated: tt.reactivated}

			c, w := testutil.NewTestContext(http.MethodPost, "/plots/create-plot", createPlotBody())
			testutil.SetAuthContext(c, 3)

			h.CreatePlot(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantMsg, parse(t, w).Message)
			assert.Equal(t, usecases.CreatePlotCommand{
				UserID:          3,
				FarmID:          7,
				Name:            "Lote 1",
				CoffeeVarietyID: 2,
				Location:        plot.Location{Latitude: 4.5, Longitude: -75.6, Altitude: 1500},
			}, m.create.got)
		})
	}
}

func TestPlotHandler_CreatePlot_MissingFarm(t *testing.T) {
	h, m := newTestPlotHandler()
	body := createPlotBody()
	delete(body, "farm_id")

	c, w := testutil.NewTestContext(http.MethodPost, "/plots/create-plot", body)
	testutil.SetAuthContext(c, 3)

	h.CreatePlot(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, m.create.got.UserID)
}

func TestPlotHandler_CreatePlot_Duplicate(t *testing.T) {
	h, m := newTestPlotHandler()
	m.create.err = errors.NewConflictError("Ya existe un lote activo con el nombre 'Lote 1' en esta finca")

	c, w := testutil.NewTestContext(http.MethodPost, "/plots/create-plot", createPlotBody())
	testutil.SetAuthContext(c, 3)

	h.CreatePlot(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Ya existe un lote activo con el nombre 'Lote 1' en esta finca", parse(t, w).Message)
}

func TestPlotHandler_UpdatePlotGeneralInfo(t *testing.T) {
	h, m := newTestPlotHandler()
	m.general.result = &dto.PlotGeneralInfoDTO{PlotID: 11, Name: "Nuevo", CoffeeVarietyName: "Caturra"}

	c, w := testutil.NewTestContext(http.MethodPost, "/plots/update-plot-general-info", map[string]any{
		"plot_id": 11, "name": "Nuevo", "coffee_variety_id": 2,
	})
	testutil.SetAuthContext(c, 3)

	h.UpdatePlotGeneralInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parse(t, w)
	assert.Equal(t, "Información general del lote actualizada correctamente", resp.Message)
	assert.Equal(t, usecases.UpdatePlotGeneralInfoCommand{UserID: 3, PlotID: 11, Name: "Nuevo", CoffeeVarietyID: 2}, m.general.got)

	var data dto.PlotGeneralInfoDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Caturra", data.CoffeeVarietyName)
}

func TestPlotHandler_UpdatePlotLocation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := newTestPlotHandler()
		m.location.result = &dto.PlotLocationDTO{PlotID: 11, Latitude: 1, Longitude: 2, Altitude: 3}

		c, w := testutil.NewTestContext(http.MethodPost, "/plots/update-plot-location", map[string]any{
			"plot_id": 11, "latitude": 1, "longitude": 2, "altitude": 3,
		})
		testutil.SetAuthContext(c, 3)

		h.UpdatePlotLocation(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ubicación del lote actualizada correctamente", parse(t, w).Message)
		assert.Equal(t, plot.Location{Latitude: 1, Longitude: 2, Altitude: 3}, m.location.got.Location)
	})

	t.Run("plot missing", func(t *testing.T) {
		h, m := newTestPlotHandler()
		m.location.err = errors.NewNotFoundError("El lote no existe o no está activo")

		c, w := testutil.NewTestContext(http.MethodPost, "/plots/update-plot-location", map[string]any{
			"plot_id": 11, "latitude": 1, "longitude": 2, "altitude": 3,
		})
		testutil.SetAuthContext(c, 3)

		h.UpdatePlotLocation(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPlotHandler_ListPlots(t *testing.T) {
	h, m := newTestPlotHandler()
	m.list.result = &dto.ListPlotsResponse{Plots: []dto.PlotDetailDTO{}}

	c, w := testutil.NewTestContext(http.MethodGet, "/plots/list-plots/7", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "farm_id", "7")

	h.ListPlots(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parse(t, w)
	assert.Equal(t, "Lista de lotes obtenida exitosamente", resp.Message)
	assert.JSONEq(t, `{"plots":[]}`, string(resp.Data))
	assert.Equal(t, usecases.ListPlotsQuery{UserID: 3, FarmID: 7}, m.list.got)
}

func TestPlotHandler_GetPlot(t *testing.T) {
	h, m := newTestPlotHandler()
	m.get.err = errors.NewForbiddenError("No tienes permiso para ver este lote")

	c, w := testutil.NewTestContext(http.MethodGet, "/plots/get-plot/11", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "plot_id", "11")

	h.GetPlot(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, usecases.GetPlotQuery{UserID: 3, PlotID: 11}, m.get.got)
}

func TestPlotHandler_DeletePlot(t *testing.T) {
	h, m := newTestPlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plots/delete-plot/11", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "plot_id", "11")

	h.DeletePlot(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lote eliminado correctamente", parse(t, w).Message)
	assert.Equal(t, usecases.DeletePlotCommand{UserID: 3, PlotID: 11}, m.delete.got)
}
