package mappers

import (
	"fmt"

	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
)

// FarmMapper handles the conversion between farm entities and persistence models
type FarmMapper interface {
	ToEntity(model *models.FarmModel) (*farm.Farm, error)
	ToModel(entity *farm.Farm) *models.FarmModel
}

type farmMapper struct{}

func NewFarmMapper() FarmMapper {
	return &farmMapper{}
}

func (m *farmMapper) ToEntity(model *models.FarmModel) (*farm.Farm, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := farm.ReconstructFarm(
		model.ID,
		model.Name,
		model.Area,
		model.AreaUnitID,
		model.FarmStateID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct farm entity: %w", err)
	}
	return entity, nil
}

func (m *farmMapper) ToModel(entity *farm.Farm) *models.FarmModel {
	if entity == nil {
		return nil
	}
	return &models.FarmModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Area:        entity.Area(),
		AreaUnitID:  entity.AreaUnitID(),
		FarmStateID: entity.FarmStateID(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
