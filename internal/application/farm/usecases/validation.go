package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// validateFarmInput checks name, area and unit in that order and returns the
// resolved unit.
func validateFarmInput(ctx context.Context, farms farm.Repository, log logger.Interface, name string, area float64, areaUnitID uint) (*farm.AreaUnit, error) {
	if err := farm.ValidateName(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := farm.ValidateArea(area); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	unit, err := farms.GetAreaUnit(ctx, areaUnitID)
	if err != nil {
		log.Errorw("failed to load area unit", "area_unit_id", areaUnitID, "error", err)
		return nil, errors.NewInternalError("failed to load area unit")
	}
	if unit == nil {
		log.Warnw("area unit not found", "area_unit_id", areaUnitID)
		return nil, errors.NewValidationError(farm.ErrAreaUnitRequired.Error())
	}
	return unit, nil
}
