package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/catalog/dto"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

type ListAreaUnitsUseCase struct {
	farms  farm.Repository
	logger logger.Interface
}

func NewListAreaUnitsUseCase(farms farm.Repository, logger logger.Interface) *ListAreaUnitsUseCase {
	return &ListAreaUnitsUseCase{farms: farms, logger: logger}
}

func (uc *ListAreaUnitsUseCase) Execute(ctx context.Context) ([]dto.AreaUnitDTO, error) {
	units, err := uc.farms.ListAreaUnits(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list area units", "error", err)
		return nil, errors.NewInternalError("Error al obtener las unidades de área")
	}
	return dto.ToAreaUnitDTOs(units), nil
}

type ListCoffeeVarietiesUseCase struct {
	plots  plot.Repository
	logger logger.Interface
}

func NewListCoffeeVarietiesUseCase(plots plot.Repository, logger logger.Interface) *ListCoffeeVarietiesUseCase {
	return &ListCoffeeVarietiesUseCase{plots: plots, logger: logger}
}

func (uc *ListCoffeeVarietiesUseCase) Execute(ctx context.Context) ([]dto.CoffeeVarietyDTO, error) {
	varieties, err := uc.plots.ListCoffeeVarieties(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list coffee varieties", "error", err)
		return nil, errors.NewInternalError("Error al obtener las variedades de café")
	}
	return dto.ToCoffeeVarietyDTOs(varieties), nil
}
