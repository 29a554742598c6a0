package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/mappers"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/db"
	sharedErrors "github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// UserRoleFarmRepositoryImpl implements collaborator.Repository
type UserRoleFarmRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserRoleFarmMapper
	logger logger.Interface
}

func NewUserRoleFarmRepository(db *gorm.DB, logger logger.Interface) collaborator.Repository {
	return &UserRoleFarmRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserRoleFarmMapper(),
		logger: logger,
	}
}

func (r *UserRoleFarmRepositoryImpl) Create(ctx context.Context, urf *collaborator.UserRoleFarm) error {
	model := r.mapper.ToModel(urf)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return sharedErrors.NewConflictError("role association already linked to this farm")
		}
		r.logger.Errorw("failed to create user role farm",
			"user_role_id", urf.UserRoleID(),
			"farm_id", urf.FarmID(),
			"error", err)
		return fmt.Errorf("failed to create user role farm: %w", err)
	}
	if err := urf.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user role farm ID: %w", err)
	}

	r.logger.Infow("user role farm created",
		"id", model.ID,
		"user_role_id", model.UserRoleID,
		"farm_id", model.FarmID)
	return nil
}

func (r *UserRoleFarmRepositoryImpl) Update(ctx context.Context, urf *collaborator.UserRoleFarm) error {
	model := r.mapper.ToModel(urf)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserRoleFarmModel{}).
		Where("user_role_farm_id = ?", model.ID).
		Updates(map[string]any{
			"user_role_id":            model.UserRoleID,
			"user_role_farm_state_id": model.UserRoleFarmStateID,
			"updated_at":              model.UpdatedAt,
		})
	if result.Error != nil {
		if sharedErrors.IsDuplicateError(result.Error) {
			return sharedErrors.NewConflictError("role association already linked to this farm")
		}
		r.logger.Errorw("failed to update user role farm", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user role farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return collaborator.ErrUserRoleFarmNotFound
	}
	return nil
}

func (r *UserRoleFarmRepositoryImpl) FindForFarm(ctx context.Context, userRoleIDs []uint, farmID, stateID uint) (*collaborator.UserRoleFarm, error) {
	if len(userRoleIDs) == 0 {
		return nil, nil
	}

	var model models.UserRoleFarmModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("user_role_id IN ? AND farm_id = ? AND user_role_farm_state_id = ?", userRoleIDs, farmID, stateID).
		Order("user_role_farm_id").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find user role farm", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to find user role farm: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRoleFarmRepositoryImpl) ListByFarm(ctx context.Context, farmID, stateID uint) ([]*collaborator.UserRoleFarm, error) {
	var rows []models.UserRoleFarmModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("farm_id = ? AND user_role_farm_state_id = ?", farmID, stateID).
		Order("user_role_farm_id").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list user role farms", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("failed to list user role farms: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *UserRoleFarmRepositoryImpl) UpdateStateByFarm(ctx context.Context, farmID, stateID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserRoleFarmModel{}).
		Where("farm_id = ?", farmID).
		Update("user_role_farm_state_id", stateID)
	if result.Error != nil {
		r.logger.Errorw("failed to update user role farm states", "farm_id", farmID, "error", result.Error)
		return 0, fmt.Errorf("failed to update user role farm states: %w", result.Error)
	}

	r.logger.Infow("user role farm states updated",
		"farm_id", farmID,
		"state_id", stateID,
		"rows", result.RowsAffected)
	return result.RowsAffected, nil
}
