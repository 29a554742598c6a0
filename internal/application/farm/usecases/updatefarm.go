package usecases

import (
	"context"
	"strings"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgEditNotAssociated = "No tienes permiso para editar esta finca porque no estás asociado con una finca activa"
	msgEditDenied        = "No tienes permiso para editar esta finca"
	msgFarmNameTaken     = "El nombre de la finca ya está en uso por otra finca del propietario"
	msgUpdateFarmFailed  = "Error al actualizar la finca"
)

type UpdateFarmCommand struct {
	UserID     uint
	FarmID     uint
	Name       string
	Area       float64
	AreaUnitID uint
}

type UpdateFarmUseCase struct {
	farms  farm.Repository
	guard  *access.Guard
	logger logger.Interface
}

func NewUpdateFarmUseCase(farms farm.Repository, guard *access.Guard, logger logger.Interface) *UpdateFarmUseCase {
	return &UpdateFarmUseCase{
		farms:  farms,
		guard:  guard,
		logger: logger,
	}
}

func (uc *UpdateFarmUseCase) Execute(ctx context.Context, cmd UpdateFarmCommand) (*dto.CreatedFarmDTO, error) {
	uc.logger.Infow("updating farm", "user_id", cmd.UserID, "farm_id", cmd.FarmID)

	m, err := uc.guard.Authorize(ctx, cmd.UserID, cmd.FarmID, access.Policy{
		ActiveFarmOnly:   true,
		FarmNotFound:     access.MsgFarmNotFound,
		NotAssociated:    msgEditNotAssociated,
		Permission:       collaborator.PermEditFarm,
		PermissionDenied: msgEditDenied,
	})
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	unit, err := validateFarmInput(ctx, uc.farms, uc.logger, name, cmd.Area, cmd.AreaUnitID)
	if err != nil {
		return nil, err
	}

	f := m.Farm
	if name != f.Name() {
		exists, err := uc.farms.ExistsActiveName(ctx, name, farm.MembershipFilter{
			UserRoleIDs:         m.UserRoleIDs,
			FarmStateID:         f.FarmStateID(),
			UserRoleFarmStateID: m.ActiveAssociationStateID,
		}, f.ID())
		if err != nil {
			uc.logger.Errorw("failed to check farm name", "farm_id", f.ID(), "error", err)
			return nil, errors.NewInternalError(msgUpdateFarmFailed)
		}
		if exists {
			uc.logger.Warnw("farm name already in use", "farm_id", f.ID(), "name", name)
			return nil, errors.NewConflictError(msgFarmNameTaken)
		}
	}

	if err := f.Update(name, cmd.Area, unit.ID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.farms.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update farm", "farm_id", f.ID(), "error", err)
		return nil, errors.NewInternalError(msgUpdateFarmFailed)
	}

	uc.logger.Infow("farm updated", "farm_id", f.ID())
	return dto.ToCreatedFarmDTO(f, unit), nil
}
