package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgUserServiceUnavailable = "Error al comunicarse con el servicio de usuarios"
	msgCreateFarmFailed       = "Error al crear la finca o asignar el usuario"
)

type CreateFarmCommand struct {
	UserID     uint
	Name       string
	Area       float64
	AreaUnitID uint
}

// errOwnerRole marks a failed remote owner-role creation inside the
// transaction.
var errOwnerRole = stderrors.New("owner role creation failed")

// CreateFarmUseCase creates a farm and makes the requester its owner. The
// farm row, the remote owner role and the association are created inside one
// local transaction.
type CreateFarmUseCase struct {
	farms        farm.Repository
	associations collaborator.Repository
	guard        *access.Guard
	users        UserService
	tx           db.Transactor
	logger       logger.Interface
}

func NewCreateFarmUseCase(
	farms farm.Repository,
	associations collaborator.Repository,
	guard *access.Guard,
	users UserService,
	tx db.Transactor,
	logger logger.Interface,
) *CreateFarmUseCase {
	return &CreateFarmUseCase{
		farms:        farms,
		associations: associations,
		guard:        guard,
		users:        users,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *CreateFarmUseCase) Execute(ctx context.Context, cmd CreateFarmCommand) (*dto.CreatedFarmDTO, error) {
	uc.logger.Infow("creating farm", "user_id", cmd.UserID, "name", cmd.Name)

	name := strings.TrimSpace(cmd.Name)
	unit, err := validateFarmInput(ctx, uc.farms, uc.logger, name, cmd.Area, cmd.AreaUnitID)
	if err != nil {
		return nil, err
	}

	activeFarm, err := uc.guard.ActiveState(ctx, uc.guard.States().Farm)
	if err != nil {
		return nil, err
	}
	activeURF, err := uc.guard.ActiveState(ctx, uc.guard.States().UserRoleFarm)
	if err != nil {
		return nil, err
	}

	roleIDs, err := uc.guard.UserRoleIDs(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.farms.ExistsActiveName(ctx, name, farm.MembershipFilter{
		UserRoleIDs:         roleIDs,
		FarmStateID:         activeFarm,
		UserRoleFarmStateID: activeURF,
	}, 0)
	if err != nil {
		uc.logger.Errorw("failed to check farm name", "name", name, "error", err)
		return nil, errors.NewInternalError(msgCreateFarmFailed)
	}
	if exists {
		uc.logger.Warnw("farm name already in use", "user_id", cmd.UserID, "name", name)
		return nil, errors.NewConflictError(fmt.Sprintf("Ya existe una finca activa con el nombre '%s' para el propietario", name))
	}

	f, err := farm.NewFarm(name, cmd.Area, unit.ID, activeFarm)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.farms.Create(ctx, f); err != nil {
			return err
		}

		userRoleID, err := uc.users.CreateUserRole(ctx, cmd.UserID, collaborator.RoleOwner)
		if err != nil {
			return fmt.Errorf("%w: %w", errOwnerRole, err)
		}

		urf, err := collaborator.NewUserRoleFarm(userRoleID, f.ID(), activeURF)
		if err != nil {
			return err
		}
		return uc.associations.Create(ctx, urf)
	})
	if err != nil {
		uc.logger.Errorw("failed to create farm", "user_id", cmd.UserID, "name", name, "error", err)
		if stderrors.Is(err, errOwnerRole) {
			return nil, errors.NewInternalError(msgUserServiceUnavailable)
		}
		return nil, errors.NewInternalError(msgCreateFarmFailed)
	}

	uc.logger.Infow("farm created", "farm_id", f.ID(), "user_id", cmd.UserID)
	return dto.ToCreatedFarmDTO(f, unit), nil
}
