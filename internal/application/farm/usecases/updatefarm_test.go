package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/logger"
)

func TestUpdateFarm(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermEditFarm)
	uc := NewUpdateFarmUseCase(f.farms, f.guard, logger.NewNop())

	result, err := uc.Execute(context.Background(), UpdateFarmCommand{
		UserID: 1, FarmID: a.ID(), Name: "Alfa Norte", Area: 4.5, AreaUnitID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alfa Norte", result.Name)

	stored := f.farms.Get(a.ID())
	assert.Equal(t, "Alfa Norte", stored.Name())
	assert.Equal(t, 4.5, stored.Area())
}

func TestUpdateFarm_KeepingNameSkipsUniqueness(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermEditFarm)

	_, err := NewUpdateFarmUseCase(f.farms, f.guard, logger.NewNop()).Execute(context.Background(), UpdateFarmCommand{
		UserID: 1, FarmID: a.ID(), Name: "Alfa", Area: 9, AreaUnitID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, f.farms.Get(a.ID()).Area())
}

func TestUpdateFarm_Rejections(t *testing.T) {
	tests := []struct {
		name string
		cmd  func(a, b uint) UpdateFarmCommand
		code int
		msg  string
	}{
		{
			name: "name used by another of the user's farms",
			cmd: func(a, b uint) UpdateFarmCommand {
				return UpdateFarmCommand{UserID: 1, FarmID: a, Name: "Beta", Area: 1, AreaUnitID: 1}
			},
			code: http.StatusConflict,
			msg:  "El nombre de la finca ya está en uso por otra finca del propietario",
		},
		{
			name: "not associated",
			cmd: func(a, b uint) UpdateFarmCommand {
				return UpdateFarmCommand{UserID: 9, FarmID: a, Name: "X", Area: 1, AreaUnitID: 1}
			},
			code: http.StatusForbidden,
			msg:  "No tienes permiso para editar esta finca porque no estás asociado con una finca activa",
		},
		{
			name: "missing edit permission",
			cmd: func(a, b uint) UpdateFarmCommand {
				return UpdateFarmCommand{UserID: 2, FarmID: a, Name: "X", Area: 1, AreaUnitID: 1}
			},
			code: http.StatusForbidden,
			msg:  "No tienes permiso para editar esta finca",
		},
		{
			name: "invalid area",
			cmd: func(a, b uint) UpdateFarmCommand {
				return UpdateFarmCommand{UserID: 1, FarmID: a, Name: "Alfa", Area: -1, AreaUnitID: 1}
			},
			code: http.StatusBadRequest,
			msg:  "El área de la finca debe ser un número positivo mayor que cero",
		},
		{
			name: "farm missing",
			cmd: func(a, b uint) UpdateFarmCommand {
				return UpdateFarmCommand{UserID: 1, FarmID: 999, Name: "Alfa", Area: 1, AreaUnitID: 1}
			},
			code: http.StatusNotFound,
			msg:  "Finca no encontrada",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
			b := f.farms.Seed("Beta", 1, testutil.ActiveStateID)
			f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermEditFarm)
			f.join(1, 101, b.ID(), collaborator.RoleOwner, collaborator.PermEditFarm)
			f.join(2, 200, a.ID(), collaborator.RoleOperator)

			_, err := NewUpdateFarmUseCase(f.farms, f.guard, logger.NewNop()).Execute(context.Background(), tt.cmd(a.ID(), b.ID()))
			assertAppError(t, err, tt.code, tt.msg)
			assert.Equal(t, "Alfa", f.farms.Get(a.ID()).Name())
		})
	}
}
