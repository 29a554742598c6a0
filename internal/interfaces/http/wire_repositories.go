package http

import (
	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/repository"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	farmRepo         farm.Repository
	plotRepo         plot.Repository
	stateRepo        state.Repository
	userRoleFarmRepo collaborator.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		farmRepo:         repository.NewFarmRepository(db, log),
		plotRepo:         repository.NewPlotRepository(db, log),
		stateRepo:        repository.NewStateRepository(db, log),
		userRoleFarmRepo: repository.NewUserRoleFarmRepository(db, log),
	}
}
