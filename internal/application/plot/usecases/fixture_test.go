package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/testutil"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/domain/state"
	apperrors "github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	ownerUser    uint = 1
	operatorUser uint = 2
	strangerUser uint = 9
)

var someplace = plot.Location{Latitude: 4.81, Longitude: -75.69, Altitude: 1450}

type fixture struct {
	states *testutil.MockStateRepository
	urfs   *testutil.MockUserRoleFarmRepository
	farms  *testutil.MockFarmRepository
	plots  *testutil.MockPlotRepository
	users  *testutil.MockUserService
	guard  *access.Guard

	farmID uint
	perms  map[uint][]string
}

// newFixture seeds an active farm where the owner (role 100) holds every
// plot permission and the operator (role 200) may only read.
func newFixture() *fixture {
	f := &fixture{
		states: testutil.NewMockStateRepository(),
		urfs:   testutil.NewMockUserRoleFarmRepository(),
		plots:  testutil.NewMockPlotRepository(),
		users:  &testutil.MockUserService{},
		perms: map[uint][]string{
			100: {collaborator.PermAddPlot, collaborator.PermEditPlot, collaborator.PermDeletePlot, collaborator.PermReadPlots},
			200: {collaborator.PermReadPlots},
		},
	}
	f.farms = testutil.NewMockFarmRepository(f.urfs)
	f.farmID = f.farms.Seed("La Esperanza", 10, testutil.ActiveStateID).ID()
	f.urfs.Seed(100, f.farmID, testutil.ActiveStateID)
	f.urfs.Seed(200, f.farmID, testutil.ActiveStateID)

	f.users.GetUserRoleIDsFunc = testutil.RoleIDs(map[uint][]uint{ownerUser: {100}, operatorUser: {200}})
	f.users.GetPermissionsForUserRoleFunc = func(ctx context.Context, id uint) ([]string, error) {
		return testutil.Permissions(f.perms)(ctx, id)
	}
	f.guard = access.NewGuard(f.farms, f.urfs, state.NewLookup(f.states), f.users, logger.NewNop())
	return f
}

func (f *fixture) deactivateFarm() {
	farm := f.farms.Get(f.farmID)
	farm.SetState(testutil.InactiveStateID)
	if err := f.farms.Update(context.Background(), farm); err != nil {
		panic(err)
	}
}

func assertAppError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
}
