package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgDeleteDenied     = "No tienes permiso para eliminar esta finca"
	msgDeleteFarmFailed = "Error al desactivar la finca"
)

type DeleteFarmCommand struct {
	UserID uint
	FarmID uint
}

// DeleteFarmUseCase inactivates a farm together with every association to it.
type DeleteFarmUseCase struct {
	farms        farm.Repository
	associations collaborator.Repository
	guard        *access.Guard
	tx           db.Transactor
	logger       logger.Interface
}

func NewDeleteFarmUseCase(
	farms farm.Repository,
	associations collaborator.Repository,
	guard *access.Guard,
	tx db.Transactor,
	logger logger.Interface,
) *DeleteFarmUseCase {
	return &DeleteFarmUseCase{
		farms:        farms,
		associations: associations,
		guard:        guard,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *DeleteFarmUseCase) Execute(ctx context.Context, cmd DeleteFarmCommand) error {
	uc.logger.Infow("deleting farm", "user_id", cmd.UserID, "farm_id", cmd.FarmID)

	m, err := uc.guard.Authorize(ctx, cmd.UserID, cmd.FarmID, access.Policy{
		ActiveFarmOnly:   true,
		NotAssociated:    msgDeleteDenied,
		Permission:       collaborator.PermDeleteFarm,
		PermissionDenied: msgDeleteDenied,
	})
	if err != nil {
		return err
	}

	inactiveFarm, err := uc.guard.InactiveState(ctx, uc.guard.States().Farm)
	if err != nil {
		return err
	}
	inactiveURF, err := uc.guard.InactiveState(ctx, uc.guard.States().UserRoleFarm)
	if err != nil {
		return err
	}

	f := m.Farm
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		f.SetState(inactiveFarm)
		if err := uc.farms.Update(ctx, f); err != nil {
			return err
		}
		_, err := uc.associations.UpdateStateByFarm(ctx, f.ID(), inactiveURF)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to deactivate farm", "farm_id", f.ID(), "error", err)
		return errors.NewInternalError(msgDeleteFarmFailed)
	}

	uc.logger.Infow("farm deactivated", "farm_id", f.ID())
	return nil
}
