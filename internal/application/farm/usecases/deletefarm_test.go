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

func (f *fixture) deleteUseCase() *DeleteFarmUseCase {
	return NewDeleteFarmUseCase(f.farms, f.urfs, f.guard, f.tx, logger.NewNop())
}

func TestDeleteFarm(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermDeleteFarm)
	f.join(2, 200, a.ID(), collaborator.RoleOperator)

	require.NoError(t, f.deleteUseCase().Execute(context.Background(), DeleteFarmCommand{UserID: 1, FarmID: a.ID()}))

	assert.True(t, f.farms.Get(a.ID()).IsInState(testutil.InactiveStateID))
	assert.True(t, f.urfs.Get(1).IsInState(testutil.InactiveStateID))
	assert.True(t, f.urfs.Get(2).IsInState(testutil.InactiveStateID))
	assert.Equal(t, 1, f.tx.Calls)
}

func TestDeleteFarm_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *fixture)
		userID uint
		code   int
		msg    string
	}{
		{name: "operator lacks permission", userID: 2, code: http.StatusForbidden, msg: "No tienes permiso para eliminar esta finca"},
		{name: "stranger", userID: 9, code: http.StatusForbidden, msg: "No tienes permiso para eliminar esta finca"},
		{
			name:   "inactive state missing",
			setup:  func(f *fixture) { delete(f.states.FarmStates, "Inactivo") },
			userID: 1,
			code:   http.StatusBadRequest,
			msg:    "Estado 'Inactivo' no encontrado para 'Farms'",
		},
		{
			name:   "bulk association update fails",
			setup:  func(f *fixture) { f.urfs.UpdateErr = errors.New("lock wait timeout") },
			userID: 1,
			code:   http.StatusInternalServerError,
			msg:    "Error al desactivar la finca",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			a := f.farms.Seed("Alfa", 1, testutil.ActiveStateID)
			f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermDeleteFarm)
			f.join(2, 200, a.ID(), collaborator.RoleOperator)
			if tt.setup != nil {
				tt.setup(f)
			}

			err := f.deleteUseCase().Execute(context.Background(), DeleteFarmCommand{UserID: tt.userID, FarmID: a.ID()})
			assertAppError(t, err, tt.code, tt.msg)
			assert.True(t, f.urfs.Get(2).IsInState(testutil.ActiveStateID))
		})
	}
}

func TestDeleteFarm_AlreadyInactive(t *testing.T) {
	f := newFixture()
	a := f.farms.Seed("Alfa", 1, testutil.InactiveStateID)
	f.join(1, 100, a.ID(), collaborator.RoleOwner, collaborator.PermDeleteFarm)

	err := f.deleteUseCase().Execute(context.Background(), DeleteFarmCommand{UserID: 1, FarmID: a.ID()})
	assertAppError(t, err, http.StatusNotFound, "Finca no encontrada")
}
