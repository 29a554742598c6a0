package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/state"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// StateRepositoryImpl reads the three lifecycle state reference tables
type StateRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStateRepository(db *gorm.DB, logger logger.Interface) state.Repository {
	return &StateRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *StateRepositoryImpl) FindFarmState(ctx context.Context, name string) (*state.State, error) {
	var model models.FarmStateModel
	if found, err := r.findByName(ctx, &model, name); err != nil || !found {
		return nil, err
	}
	return &state.State{ID: model.ID, Name: model.Name, Category: state.CategoryFarm}, nil
}

func (r *StateRepositoryImpl) FindPlotState(ctx context.Context, name string) (*state.State, error) {
	var model models.PlotStateModel
	if found, err := r.findByName(ctx, &model, name); err != nil || !found {
		return nil, err
	}
	return &state.State{ID: model.ID, Name: model.Name, Category: state.CategoryPlot}, nil
}

func (r *StateRepositoryImpl) FindUserRoleFarmState(ctx context.Context, name string) (*state.State, error) {
	var model models.UserRoleFarmStateModel
	if found, err := r.findByName(ctx, &model, name); err != nil || !found {
		return nil, err
	}
	return &state.State{ID: model.ID, Name: model.Name, Category: state.CategoryUserRoleFarm}, nil
}

func (r *StateRepositoryImpl) findByName(ctx context.Context, dest any, name string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("name = ?", name).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		r.logger.Errorw("failed to find state", "name", name, "error", err)
		return false, fmt.Errorf("failed to find state: %w", err)
	}
	return true, nil
}
