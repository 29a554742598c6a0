package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/logger"
)

func createFarmWithMember(t *testing.T, db *gorm.DB, name string, farmState, userRoleID, urfState uint) *farm.Farm {
	t.Helper()
	ctx := context.Background()

	f, err := farm.NewFarm(name, 10, 1, farmState)
	require.NoError(t, err)
	require.NoError(t, NewFarmRepository(db, logger.NewNop()).Create(ctx, f))

	urf, err := collaborator.NewUserRoleFarm(userRoleID, f.ID(), urfState)
	require.NoError(t, err)
	require.NoError(t, NewUserRoleFarmRepository(db, logger.NewNop()).Create(ctx, urf))
	return f
}

func TestFarmRepository_MembershipQueries(t *testing.T) {
	db := setupTestDB(t)
	st := loadStates(t, db)
	repo := NewFarmRepository(db, logger.NewNop())
	ctx := context.Background()

	mine := createFarmWithMember(t, db, "La Esperanza", st.farmActive, 100, st.urfActive)
	createFarmWithMember(t, db, "Otra", st.farmActive, 200, st.urfActive)
	createFarmWithMember(t, db, "Vieja", st.farmInactive, 100, st.urfActive)
	createFarmWithMember(t, db, "Dejada", st.farmActive, 101, st.urfInactive)

	filter := farm.MembershipFilter{
		UserRoleIDs:         []uint{100, 101},
		FarmStateID:         st.farmActive,
		UserRoleFarmStateID: st.urfActive,
	}

	list, err := repo.ListForUserRoles(ctx, filter)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID(), list[0].FarmID)
	assert.Equal(t, "La Esperanza", list[0].Name)
	assert.Equal(t, "Hectáreas", list[0].AreaUnit)
	assert.Equal(t, "Activo", list[0].FarmState)
	assert.Equal(t, uint(100), list[0].UserRoleID)

	got, err := repo.GetForUserRoles(ctx, mine.ID(), filter)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10.0, got.Area)

	got, err = repo.GetForUserRoles(ctx, mine.ID(), farm.MembershipFilter{
		UserRoleIDs: []uint{200}, FarmStateID: st.farmActive, UserRoleFarmStateID: st.urfActive,
	})
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err := repo.ExistsActiveName(ctx, "La Esperanza", filter, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActiveName(ctx, "La Esperanza", filter, mine.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsActiveName(ctx, "Vieja", filter, 0)
	require.NoError(t, err)
	assert.False(t, exists, "inactive farms do not block a name")

	empty, err := repo.ListForUserRoles(ctx, farm.MembershipFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFarmRepository_UpdateAndDetail(t *testing.T) {
	db := setupTestDB(t)
	st := loadStates(t, db)
	repo := NewFarmRepository(db, logger.NewNop())
	ctx := context.Background()

	f := createFarmWithMember(t, db, "Finca", st.farmActive, 1, st.urfActive)
	require.NoError(t, f.Update("Finca Nueva", 25.5, 2))
	f.SetState(st.farmInactive)
	require.NoError(t, repo.Update(ctx, f))

	detail, err := repo.GetDetail(ctx, f.ID())
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Finca Nueva", detail.Name)
	assert.Equal(t, 25.5, detail.Area)
	assert.Equal(t, uint(2), detail.AreaUnitID)
	assert.Equal(t, "Inactivo", detail.FarmState)

	missing, err := repo.GetDetail(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, byID)

	ghost, err := farm.ReconstructFarm(999, "x", 1, 1, 1, f.CreatedAt(), f.UpdatedAt())
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, ghost), farm.ErrFarmNotFound)
}

func TestFarmRepository_AreaUnits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFarmRepository(db, logger.NewNop())
	ctx := context.Background()

	units, err := repo.ListAreaUnits(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, units)
	assert.Equal(t, "ha", units[0].Abbreviation)

	unit, err := repo.GetAreaUnit(ctx, units[0].ID)
	require.NoError(t, err)
	assert.Equal(t, units[0].Name, unit.Name)

	unit, err = repo.GetAreaUnit(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, unit)
}
