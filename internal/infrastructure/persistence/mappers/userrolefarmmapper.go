package mappers

import (
	"fmt"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

// UserRoleFarmMapper handles the conversion between farm role associations
// and persistence models
type UserRoleFarmMapper interface {
	ToEntity(model *models.UserRoleFarmModel) (*collaborator.UserRoleFarm, error)
	ToEntities(models []models.UserRoleFarmModel) ([]*collaborator.UserRoleFarm, error)
	ToModel(entity *collaborator.UserRoleFarm) *models.UserRoleFarmModel
}

type userRoleFarmMapper struct{}

func NewUserRoleFarmMapper() UserRoleFarmMapper {
	return &userRoleFarmMapper{}
}

func (m *userRoleFarmMapper) ToEntity(model *models.UserRoleFarmModel) (*collaborator.UserRoleFarm, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := collaborator.ReconstructUserRoleFarm(
		model.ID,
		model.UserRoleID,
		model.FarmID,
		model.UserRoleFarmStateID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user role farm entity: %w", err)
	}
	return entity, nil
}

func (m *userRoleFarmMapper) ToEntities(rows []models.UserRoleFarmModel) ([]*collaborator.UserRoleFarm, error) {
	return mapper.MapSliceWithError(rows, func(row models.UserRoleFarmModel) (*collaborator.UserRoleFarm, error) {
		return m.ToEntity(&row)
	})
}

func (m *userRoleFarmMapper) ToModel(entity *collaborator.UserRoleFarm) *models.UserRoleFarmModel {
	if entity == nil {
		return nil
	}
	return &models.UserRoleFarmModel{
		ID:                  entity.ID(),
		UserRoleID:          entity.UserRoleID(),
		FarmID:              entity.FarmID(),
		UserRoleFarmStateID: entity.UserRoleFarmStateID(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}
}
