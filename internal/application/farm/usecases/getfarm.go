package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const msgFarmNotOwned = "Finca no encontrada o no pertenece al usuario"

type GetFarmQuery struct {
	UserID uint
	FarmID uint
}

type GetFarmUseCase struct {
	farms  farm.Repository
	guard  *access.Guard
	users  UserService
	logger logger.Interface
}

func NewGetFarmUseCase(farms farm.Repository, guard *access.Guard, users UserService, logger logger.Interface) *GetFarmUseCase {
	return &GetFarmUseCase{
		farms:  farms,
		guard:  guard,
		users:  users,
		logger: logger,
	}
}

func (uc *GetFarmUseCase) Execute(ctx context.Context, query GetFarmQuery) (*dto.GetFarmResponse, error) {
	uc.logger.Infow("getting farm", "user_id", query.UserID, "farm_id", query.FarmID)

	filter, err := membershipFilter(ctx, uc.guard, query.UserID)
	if err != nil {
		return nil, err
	}

	summary, err := uc.farms.GetForUserRoles(ctx, query.FarmID, filter)
	if err != nil {
		uc.logger.Errorw("failed to get farm", "farm_id", query.FarmID, "error", err)
		return nil, errors.NewInternalError("Error al obtener la finca")
	}
	if summary == nil {
		uc.logger.Warnw("farm not found for user", "farm_id", query.FarmID, "user_id", query.UserID)
		return nil, errors.NewNotFoundError(msgFarmNotOwned)
	}

	role := uc.users.GetRoleNameForUserRole(ctx, summary.UserRoleID)
	return &dto.GetFarmResponse{Farm: dto.ToFarmDTO(summary, role)}, nil
}
