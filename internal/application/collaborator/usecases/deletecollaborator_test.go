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
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
)

func TestDeleteCollaborator_OwnerRemovesOperator(t *testing.T) {
	f := newFixture()

	result, err := f.deleteUseCase(nil).Execute(context.Background(), DeleteCollaboratorCommand{
		RequesterID:    ownerUser,
		FarmID:         f.farmID,
		CollaboratorID: operatorUser,
	})
	require.NoError(t, err)

	assert.Equal(t, "Colaborador 'Bruno' eliminado exitosamente de la finca 'La Esperanza'", result.Message)
	assert.Equal(t, f.operatorRow.ID(), result.UserRoleFarmID)
	assert.True(t, f.urfs.Get(f.operatorRow.ID()).IsInState(testutil.InactiveStateID))
	assert.Equal(t, []uint{operatorURID}, f.users.Deleted)
}

func TestDeleteCollaborator_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		cmd   func(f *fixture) DeleteCollaboratorCommand
		code  int
		msg   string
	}{
		{
			name: "farm missing",
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: ownerUser, FarmID: 999, CollaboratorID: operatorUser}
			},
			code: http.StatusNotFound,
			msg:  "Finca no encontrada",
		},
		{
			name: "requester not associated",
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: 42, FarmID: f.farmID, CollaboratorID: operatorUser}
			},
			code: http.StatusForbidden,
			msg:  "No estás asociado a esta finca",
		},
		{
			name:  "requester role unknown",
			setup: func(f *fixture) { delete(f.roleNames, ownerURID) },
			code:  http.StatusInternalServerError,
			msg:   "Rol del usuario no encontrado",
		},
		{
			name: "collaborator role ids unavailable",
			setup: func(f *fixture) {
				f.users.GetUserRoleIDsFunc = func(_ context.Context, userID uint) ([]uint, error) {
					if userID == operatorUser {
						return nil, &userservice.TransportError{Operation: "get_user_role_ids", Err: errors.New("refused")}
					}
					return testutil.RoleIDs(f.roleIDs)(context.Background(), userID)
				}
			},
			code: http.StatusNotFound,
			msg:  "Colaborador no encontrado en esta finca",
		},
		{
			name: "collaborator info unavailable",
			setup: func(f *fixture) {
				f.users.GetCollaboratorsInfoFunc = func(context.Context, []uint) ([]collaborator.Info, error) {
					return nil, userservice.ErrMalformedResponse
				}
			},
			code: http.StatusNotFound,
			msg:  "Colaborador no encontrado",
		},
		{
			name: "self removal",
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: ownerUser}
			},
			code: http.StatusForbidden,
			msg:  "No puedes eliminar tu propia asociación con la finca",
		},
		{
			name:  "collaborator role unknown",
			setup: func(f *fixture) { delete(f.roleNames, operatorURID) },
			code:  http.StatusInternalServerError,
			msg:   "Rol del colaborador no encontrado",
		},
		{
			name: "owner cannot be removed",
			setup: func(f *fixture) {
				f.urfs.Seed(400, f.farmID, testutil.ActiveStateID)
				f.roleIDs[4] = []uint{400}
				f.roleNames[400] = collaborator.RoleOwner
				f.directory[400] = collaborator.Info{UserRoleID: 400, UserID: 4, UserName: "Elena"}
			},
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: 4}
			},
			code: http.StatusBadRequest,
			msg:  "Rol 'Propietario' no reconocido para eliminación",
		},
		{
			name: "administrator cannot remove administrator",
			setup: func(f *fixture) {
				f.urfs.Seed(250, f.farmID, testutil.ActiveStateID)
				f.roleIDs[5] = []uint{250}
				f.roleNames[250] = collaborator.RoleAdministrator
				f.directory[250] = collaborator.Info{UserRoleID: 250, UserID: 5, UserName: "Diego"}
			},
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: adminUser, FarmID: f.farmID, CollaboratorID: 5}
			},
			code: http.StatusForbidden,
			msg:  "No tienes permiso para eliminar a un colaborador con rol 'Administrador de finca'",
		},
		{
			name: "operator cannot remove anyone",
			cmd: func(f *fixture) DeleteCollaboratorCommand {
				return DeleteCollaboratorCommand{RequesterID: operatorUser, FarmID: f.farmID, CollaboratorID: adminUser}
			},
			code: http.StatusForbidden,
			msg:  "No tienes permiso para eliminar a un colaborador con rol 'Administrador de finca'",
		},
		{
			name:  "inactive state missing",
			setup: func(f *fixture) { delete(f.states.UserRoleFarmStates, "Inactivo") },
			code:  http.StatusBadRequest,
			msg:   "Estado 'Inactivo' no encontrado para 'user_role_farm'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			cmd := DeleteCollaboratorCommand{RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: operatorUser}
			if tt.cmd != nil {
				cmd = tt.cmd(f)
			}

			result, err := f.deleteUseCase(nil).Execute(context.Background(), cmd)
			assert.Nil(t, result)
			assertAppError(t, err, tt.code, tt.msg)

			assert.Empty(t, f.users.Deleted)
			assert.Zero(t, f.tx.Calls)
			assert.True(t, f.urfs.Get(f.operatorRow.ID()).IsInState(testutil.ActiveStateID))
		})
	}
}

func TestDeleteCollaborator_TargetVanishes(t *testing.T) {
	f := newFixture()
	associations := &vanishingAssociations{MockUserRoleFarmRepository: f.urfs, after: 1}

	_, err := f.deleteUseCase(associations).Execute(context.Background(), DeleteCollaboratorCommand{
		RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: operatorUser,
	})
	assertAppError(t, err, http.StatusNotFound, "El colaborador no está asociado activamente a esta finca")
	assert.Empty(t, f.users.Deleted)
}

func TestDeleteCollaborator_RemovedRowIsInvisible(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cmd := DeleteCollaboratorCommand{RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: operatorUser}

	_, err := f.deleteUseCase(nil).Execute(ctx, cmd)
	require.NoError(t, err)

	row, err := f.urfs.FindForFarm(ctx, []uint{operatorURID}, f.farmID, testutil.ActiveStateID)
	require.NoError(t, err)
	assert.Nil(t, row)

	active, err := f.urfs.ListByFarm(ctx, f.farmID, testutil.ActiveStateID)
	require.NoError(t, err)
	for _, urf := range active {
		assert.NotEqual(t, operatorURID, urf.UserRoleID())
	}

	result, err := f.deleteUseCase(nil).Execute(ctx, cmd)
	assert.Nil(t, result)
	assertAppError(t, err, http.StatusNotFound, "Colaborador no encontrado en esta finca")
	assert.Equal(t, []uint{operatorURID}, f.users.Deleted)
}

func TestDeleteCollaborator_LocalUpdateFails(t *testing.T) {
	f := newFixture()
	f.urfs.UpdateErr = errors.New("database is locked")

	_, err := f.deleteUseCase(nil).Execute(context.Background(), DeleteCollaboratorCommand{
		RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: operatorUser,
	})
	assertAppError(t, err, http.StatusInternalServerError, "Error al eliminar el colaborador")
	assert.Empty(t, f.users.Deleted)
}

func TestDeleteCollaborator_RemoteDeleteFailsAfterLocalCommit(t *testing.T) {
	f := newFixture()
	f.users.DeleteUserRoleFunc = func(context.Context, uint) error {
		return &userservice.UpstreamError{Operation: "delete_user_role", StatusCode: http.StatusInternalServerError}
	}

	_, err := f.deleteUseCase(nil).Execute(context.Background(), DeleteCollaboratorCommand{
		RequesterID: ownerUser, FarmID: f.farmID, CollaboratorID: operatorUser,
	})
	assertAppError(t, err, http.StatusInternalServerError, "Error al eliminar el colaborador")
	assert.Equal(t, []uint{operatorURID}, f.users.Deleted)
	assert.True(t, f.urfs.Get(f.operatorRow.ID()).IsInState(testutil.InactiveStateID))
}

func TestDeleteCollaborator_AdministratorRemovesOperator(t *testing.T) {
	f := newFixture()

	result, err := f.deleteUseCase(nil).Execute(context.Background(), DeleteCollaboratorCommand{
		RequesterID: adminUser, FarmID: f.farmID, CollaboratorID: operatorUser,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Message, "'Bruno'")
}
