package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

// GetFarmDetailUseCase serves the unauthenticated lookup used by sibling
// services. It ignores membership and state.
type GetFarmDetailUseCase struct {
	farms  farm.Repository
	logger logger.Interface
}

func NewGetFarmDetailUseCase(farms farm.Repository, logger logger.Interface) *GetFarmDetailUseCase {
	return &GetFarmDetailUseCase{farms: farms, logger: logger}
}

func (uc *GetFarmDetailUseCase) Execute(ctx context.Context, farmID uint) (*dto.FarmDetailDTO, error) {
	summary, err := uc.farms.GetDetail(ctx, farmID)
	if err != nil {
		uc.logger.Errorw("failed to get farm detail", "farm_id", farmID, "error", err)
		return nil, errors.NewInternalError("Error al obtener la finca")
	}
	if summary == nil {
		return nil, errors.NewNotFoundError("Finca no encontrada")
	}
	return dto.ToFarmDetailDTO(summary), nil
}
