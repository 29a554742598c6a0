package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	apperrors "github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// Users and their role-associations on the seeded farm.
const (
	ownerUser    uint = 1
	operatorUser uint = 2
	adminUser    uint = 3

	ownerURID    uint = 100
	adminURID    uint = 150
	operatorURID uint = 200
	newURID      uint = 300

	ownerRoleID    uint = 1
	adminRoleID    uint = 2
	operatorRoleID uint = 3
)

type fixture struct {
	states *testutil.MockStateRepository
	urfs   *testutil.MockUserRoleFarmRepository
	farms  *testutil.MockFarmRepository
	users  *testutil.MockUserService
	tx     *testutil.MockTransactor
	guard  *access.Guard

	farmID      uint
	operatorRow *collaborator.UserRoleFarm

	roleIDs   map[uint][]uint
	roleNames map[uint]string
	perms     map[uint][]string
	directory map[uint]collaborator.Info
}

// newFixture seeds "La Esperanza" with an owner, an administrator and an
// operator, all active.
func newFixture() *fixture {
	f := &fixture{
		states: testutil.NewMockStateRepository(),
		urfs:   testutil.NewMockUserRoleFarmRepository(),
		users:  &testutil.MockUserService{},
		tx:     &testutil.MockTransactor{},
		roleIDs: map[uint][]uint{
			ownerUser:    {ownerURID},
			adminUser:    {adminURID},
			operatorUser: {operatorURID},
		},
		roleNames: map[uint]string{
			ownerURID:    collaborator.RoleOwner,
			adminURID:    collaborator.RoleAdministrator,
			operatorURID: collaborator.RoleOperator,
			newURID:      collaborator.RoleAdministrator,
		},
		perms: map[uint][]string{
			ownerURID: {
				collaborator.PermEditAdministrator,
				collaborator.PermEditOperator,
				collaborator.PermDeleteAdministrator,
				collaborator.PermDeleteOperator,
				collaborator.PermReadCollaborators,
			},
			adminURID: {
				collaborator.PermEditOperator,
				collaborator.PermDeleteOperator,
				collaborator.PermReadCollaborators,
			},
		},
		directory: map[uint]collaborator.Info{
			ownerURID:    {UserRoleID: ownerURID, UserID: ownerUser, UserName: "Ana", UserEmail: "ana@example.com", RoleID: ownerRoleID, RoleName: collaborator.RoleOwner},
			adminURID:    {UserRoleID: adminURID, UserID: adminUser, UserName: "Carla", UserEmail: "carla@example.com", RoleID: adminRoleID, RoleName: collaborator.RoleAdministrator},
			operatorURID: {UserRoleID: operatorURID, UserID: operatorUser, UserName: "Bruno", UserEmail: "bruno@example.com", RoleID: operatorRoleID, RoleName: collaborator.RoleOperator},
		},
	}
	f.farms = testutil.NewMockFarmRepository(f.urfs)

	f.farmID = f.farms.Seed("La Esperanza", 12.5, testutil.ActiveStateID).ID()
	f.urfs.Seed(ownerURID, f.farmID, testutil.ActiveStateID)
	f.urfs.Seed(adminURID, f.farmID, testutil.ActiveStateID)
	f.operatorRow = f.urfs.Seed(operatorURID, f.farmID, testutil.ActiveStateID)

	f.users.GetUserRoleIDsFunc = func(ctx context.Context, userID uint) ([]uint, error) {
		return testutil.RoleIDs(f.roleIDs)(ctx, userID)
	}
	f.users.GetRoleNameForUserRoleFunc = func(ctx context.Context, id uint) string {
		return testutil.RoleNames(f.roleNames)(ctx, id)
	}
	f.users.GetPermissionsForUserRoleFunc = func(ctx context.Context, id uint) ([]string, error) {
		return testutil.Permissions(f.perms)(ctx, id)
	}
	f.users.GetRoleNameByIDFunc = func(_ context.Context, roleID uint) (string, error) {
		switch roleID {
		case ownerRoleID:
			return collaborator.RoleOwner, nil
		case adminRoleID:
			return collaborator.RoleAdministrator, nil
		case operatorRoleID:
			return collaborator.RoleOperator, nil
		}
		return "", userservice.ErrNotFound
	}
	f.users.GetCollaboratorsInfoFunc = func(_ context.Context, ids []uint) ([]collaborator.Info, error) {
		out := []collaborator.Info{}
		for _, id := range ids {
			if info, ok := f.directory[id]; ok {
				out = append(out, info)
			}
		}
		return out, nil
	}
	f.users.CreateUserRoleForRoleFunc = func(context.Context, uint, uint) (uint, error) {
		return newURID, nil
	}

	f.guard = access.NewGuard(f.farms, f.urfs, state.NewLookup(f.states), f.users, logger.NewNop())
	return f
}

func (f *fixture) editUseCase(associations collaborator.Repository) *EditCollaboratorRoleUseCase {
	if associations == nil {
		associations = f.urfs
	}
	return NewEditCollaboratorRoleUseCase(f.guard, associations, f.users, f.tx, logger.NewNop())
}

func (f *fixture) deleteUseCase(associations collaborator.Repository) *DeleteCollaboratorUseCase {
	if associations == nil {
		associations = f.urfs
	}
	return NewDeleteCollaboratorUseCase(f.guard, associations, f.users, f.tx, logger.NewNop())
}

// vanishingAssociations stops finding rows after a number of lookups,
// simulating a concurrent delete between resolution and mutation.
type vanishingAssociations struct {
	*testutil.MockUserRoleFarmRepository

	mu    sync.Mutex
	calls int
	after int
}

func (v *vanishingAssociations) FindForFarm(ctx context.Context, ids []uint, farmID, stateID uint) (*collaborator.UserRoleFarm, error) {
	v.mu.Lock()
	v.calls++
	n := v.calls
	v.mu.Unlock()
	if n > v.after {
		return nil, nil
	}
	return v.MockUserRoleFarmRepository.FindForFarm(ctx, ids, farmID, stateID)
}

func assertAppError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}
