package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/logger"
)

func TestListFarms(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	b := f.farms.Seed("Beta", 2, testutil.ActiveStateID)
	c := f.farms.Seed("Gamma", 3, testutil.InactiveStateID)
	other := f.farms.Seed("Ajena", 4, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner)
	f.join(1, 101, b.ID(), collaborator.RoleOperator)
	f.join(1, 102, c.ID(), collaborator.RoleOwner)
	f.join(2, 200, other.ID(), collaborator.RoleOwner)

	uc := NewListFarmsUseCase(f.farms, f.guard, f.users, logger.NewNop())
	resp, err := uc.Execute(context.Background(), ListFarmsQuery{UserID: 1})
	require.NoError(t, err)

	require.Len(t, resp.Farms, 2)
	assert.Equal(t, "Alfa", resp.Farms[0].Name)
	assert.Equal(t, collaborator.RoleOwner, resp.Farms[0].Role)
	assert.Equal(t, "Hectáreas", resp.Farms[0].AreaUnit)
	assert.Equal(t, "Activo", resp.Farms[0].FarmState)
	assert.Equal(t, "Beta", resp.Farms[1].Name)
	assert.Equal(t, collaborator.RoleOperator, resp.Farms[1].Role)
	assert.Equal(t, uint(101), resp.Farms[1].UserRoleID)
}

func TestListFarms_Empty(t *testing.T) {
	f := newFixture()

	resp, err := NewListFarmsUseCase(f.farms, f.guard, f.users, logger.NewNop()).
		Execute(context.Background(), ListFarmsQuery{UserID: 1})
	require.NoError(t, err)
	assert.NotNil(t, resp.Farms)
	assert.Empty(t, resp.Farms)
}

func TestListFarms_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.farms.ListErr = errors.New("connection reset")

	_, err := NewListFarmsUseCase(f.farms, f.guard, f.users, logger.NewNop()).
		Execute(context.Background(), ListFarmsQuery{UserID: 1})
	assertAppError(t, err, http.StatusInternalServerError, "Error al obtener la lista de fincas")
}

func TestListFarms_CancelledContext(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewListFarmsUseCase(f.farms, f.guard, f.users, logger.NewNop()).
		Execute(ctx, ListFarmsQuery{UserID: 1})
	assertAppError(t, err, http.StatusInternalServerError, "Error al obtener la lista de fincas")
}

func TestGetFarm(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	other := f.farms.Seed("Ajena", 4, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleAdministrator)
	f.join(2, 200, other.ID(), collaborator.RoleOwner)
	uc := NewGetFarmUseCase(f.farms, f.guard, f.users, logger.NewNop())

	resp, err := uc.Execute(context.Background(), GetFarmQuery{UserID: 1, FarmID: a.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Alfa", resp.Farm.Name)
	assert.Equal(t, collaborator.RoleAdministrator, resp.Farm.Role)

	_, err = uc.Execute(context.Background(), GetFarmQuery{UserID: 1, FarmID: other.ID()})
	assertAppError(t, err, http.StatusNotFound, "Finca no encontrada o no pertenece al usuario")
}

func TestGetFarmDetail(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 7, testutil.InactiveStateID)
	uc := NewGetFarmDetailUseCase(f.farms, logger.NewNop())

	detail, err := uc.Execute(context.Background(), a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alfa", detail.Name)
	assert.Equal(t, 7.0, detail.Area)
	assert.Equal(t, "Inactivo", detail.FarmState)

	_, err = uc.Execute(context.Background(), 999)
	assertAppError(t, err, http.StatusNotFound, "Finca no encontrada")
}
