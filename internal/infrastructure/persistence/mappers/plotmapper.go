package mappers

import (
	"fmt"

	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/infrastructure/persistence/models"
)

// PlotMapper handles the conversion between plot entities and persistence models
type PlotMapper interface {
	ToEntity(model *models.PlotModel) (*plot.Plot, error)
	ToModel(entity *plot.Plot) *models.PlotModel
}

type plotMapper struct{}

func NewPlotMapper() PlotMapper {
	return &plotMapper{}
}

func (m *plotMapper) ToEntity(model *models.PlotModel) (*plot.Plot, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plot.ReconstructPlot(
		model.ID,
		model.Name,
		model.CoffeeVarietyID,
		plot.Location{
			Latitude:  model.Latitude,
			Longitude: model.Longitude,
			Altitude:  model.Altitude,
		},
		model.FarmID,
		model.PlotStateID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plot entity: %w", err)
	}
	return entity, nil
}

func (m *plotMapper) ToModel(entity *plot.Plot) *models.PlotModel {
	if entity == nil {
		return nil
	}
	loc := entity.Location()
	return &models.PlotModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		Altitude:        loc.Altitude,
		CoffeeVarietyID: entity.CoffeeVarietyID(),
		FarmID:          entity.FarmID(),
		PlotStateID:     entity.PlotStateID(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
