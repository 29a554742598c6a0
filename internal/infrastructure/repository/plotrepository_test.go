package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/logger"
)

func TestPlotRepository(t *testing.T) {
	db := setupTestDB(t)
	st := loadStates(t, db)
	repo := NewPlotRepository(db, logger.NewNop())
	ctx := context.Background()

	f := createFarmWithMember(t, db, "Finca", st.farmActive, 1, st.urfActive)
	loc := plot.Location{Latitude: 4.5, Longitude: -75.6, Altitude: 1500}

	active, err := plot.NewPlot("Lote 1", 1, loc, f.ID(), st.plotActive)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, active))

	old, err := plot.NewPlot("Lote 2", 2, loc, f.ID(), st.plotInactive)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, old))

	t.Run("name uniqueness only among active plots", func(t *testing.T) {
		exists, err := repo.ExistsByFarmAndName(ctx, f.ID(), "Lote 1", st.plotActive, 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByFarmAndName(ctx, f.ID(), "Lote 1", st.plotActive, active.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByFarmAndName(ctx, f.ID(), "Lote 2", st.plotActive, 0)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("find inactive by name and reactivate", func(t *testing.T) {
		found, err := repo.FindByFarmAndName(ctx, f.ID(), "Lote 2", st.plotInactive)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, old.ID(), found.ID())

		moved := plot.Location{Latitude: 5, Longitude: -74, Altitude: 1800}
		require.NoError(t, found.Reactivate(st.plotActive, 3, moved))
		require.NoError(t, repo.Update(ctx, found))

		got, err := repo.GetByIDInState(ctx, old.ID(), st.plotActive)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, moved, got.Location())
		assert.Equal(t, uint(3), got.CoffeeVarietyID())
	})

	t.Run("details join variety names", func(t *testing.T) {
		list, err := repo.ListByFarm(ctx, f.ID(), st.plotActive)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Castillo", list[0].CoffeeVarietyName)
		assert.Equal(t, "Colombia", list[1].CoffeeVarietyName)

		detail, err := repo.GetDetail(ctx, active.ID(), st.plotActive)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, f.ID(), detail.FarmID)
		assert.Equal(t, loc, detail.Location)

		detail, err = repo.GetDetail(ctx, active.ID(), st.plotInactive)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("coffee varieties", func(t *testing.T) {
		varieties, err := repo.ListCoffeeVarieties(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, varieties)

		v, err := repo.GetCoffeeVariety(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
