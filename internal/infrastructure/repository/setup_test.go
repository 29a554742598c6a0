package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/migration"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// setupTestDB returns a private in-memory database with the schema and the
// reference seeds applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := logger.NewNop()
	require.NoError(t, migration.NewManagerWithStrategy(migration.NewAutoMigrateStrategy(log), log).Migrate(db))
	return db
}

type testStates struct {
	farmActive, farmInactive uint
	plotActive, plotInactive uint
	urfActive, urfInactive   uint
}

func loadStates(t *testing.T, db *gorm.DB) testStates {
	t.Helper()
	lookup := state.NewLookup(NewStateRepository(db, logger.NewNop()))
	ctx := context.Background()

	must := func(s *state.State, err error) uint {
		require.NoError(t, err)
		return s.ID
	}
	return testStates{
		farmActive:   must(lookup.Farm(ctx, state.NameActive)),
		farmInactive: must(lookup.Farm(ctx, state.NameInactive)),
		plotActive:   must(lookup.Plot(ctx, state.NameActive)),
		plotInactive: must(lookup.Plot(ctx, state.NameInactive)),
		urfActive:    must(lookup.UserRoleFarm(ctx, state.NameActive)),
		urfInactive:  must(lookup.UserRoleFarm(ctx, state.NameInactive)),
	}
}
