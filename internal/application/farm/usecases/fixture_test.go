package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/domain/state"
	apperrors "github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

type fixture struct {
	states *testutil.MockStateRepository
	urfs   *testutil.MockUserRoleFarmRepository
	farms  *testutil.MockFarmRepository
	users  *testutil.MockUserService
	tx     *testutil.MockTransactor
	guard  *access.Guard

	roleIDs   map[uint][]uint
	roleNames map[uint]string
	perms     map[uint][]string
}

func newFixture() *fixture {
	f := &fixture{
		states:    testutil.NewMockStateRepository(),
		urfs:      testutil.NewMockUserRoleFarmRepository(),
		users:     &testutil.MockUserService{},
		tx:        &testutil.MockTransactor{},
		roleIDs:   map[uint][]uint{},
		roleNames: map[uint]string{},
		perms:     map[uint][]string{},
	}
	f.farms = testutil.NewMockFarmRepository(f.urfs)
	f.users.GetUserRoleIDsFunc = func(ctx context.Context, userID uint) ([]uint, error) {
		return testutil.RoleIDs(f.roleIDs)(ctx, userID)
	}
	f.users.GetRoleNameForUserRoleFunc = func(ctx context.Context, id uint) string {
		return testutil.RoleNames(f.roleNames)(ctx, id)
	}
	f.users.GetPermissionsForUserRoleFunc = func(ctx context.Context, id uint) ([]string, error) {
		return testutil.Permissions(f.perms)(ctx, id)
	}
	f.guard = access.NewGuard(f.farms, f.urfs, state.NewLookup(f.states), f.users, logger.NewNop())
	return f
}

// join seeds an active association of userRoleID to farmID and records it as
// one of userID's role-associations.
func (f *fixture) join(userID, userRoleID, farmID uint, role string, perms ...string) {
	f.urfs.Seed(userRoleID, farmID, testutil.ActiveStateID)
	f.roleIDs[userID] = append(f.roleIDs[userID], userRoleID)
	f.roleNames[userRoleID] = role
	f.perms[userRoleID] = perms
}

func assertAppError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}
