package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgCannotChangeOwnRole   = "No puedes cambiar tu propio rol"
	msgTargetNotAssociated   = "El colaborador no está asociado a esta finca"
	msgTargetRoleUnknown     = "Rol actual del colaborador no encontrado"
	msgInvalidDesiredRole    = "Rol deseado no válido"
	msgDesiredRoleUnresolved = "No se pudo obtener el rol deseado"
	msgRoleUpdateFailed      = "Error al actualizar el rol del colaborador"
	msgRequesterOutsideTree  = "Rol del usuario no está definido en la jerarquía"
)

type EditCollaboratorRoleCommand struct {
	RequesterID    uint
	FarmID         uint
	CollaboratorID uint
	NewRoleID      uint
}

type EditCollaboratorRoleResult struct {
	Message        string
	UserRoleFarmID uint
	NewUserRoleID  uint
	NewRole        string
}

// EditCollaboratorRoleUseCase moves a collaborator to a different role on
// one farm. The user service never mutates a role-association in place: a
// fresh one is created for the desired role and the farm row is repointed at
// it.
type EditCollaboratorRoleUseCase struct {
	targetResolver
	tx db.Transactor
}

func NewEditCollaboratorRoleUseCase(
	guard *access.Guard,
	associations collaborator.Repository,
	users UserService,
	tx db.Transactor,
	logger logger.Interface,
) *EditCollaboratorRoleUseCase {
	return &EditCollaboratorRoleUseCase{
		targetResolver: targetResolver{
			guard:        guard,
			associations: associations,
			users:        users,
			logger:       logger,
		},
		tx: tx,
	}
}

func (uc *EditCollaboratorRoleUseCase) Execute(ctx context.Context, cmd EditCollaboratorRoleCommand) (*EditCollaboratorRoleResult, error) {
	uc.logger.Infow("editing collaborator role",
		"farm_id", cmd.FarmID,
		"requester_id", cmd.RequesterID,
		"collaborator_id", cmd.CollaboratorID,
		"new_role_id", cmd.NewRoleID,
	)

	req, err := uc.authorizeRequester(ctx, cmd.RequesterID, cmd.FarmID)
	if err != nil {
		return nil, err
	}
	activeStateID := req.membership.ActiveAssociationStateID

	t, err := uc.resolve(ctx, cmd.CollaboratorID, cmd.FarmID, activeStateID)
	if err != nil {
		return nil, err
	}

	if req.membership.Association.UserRoleID() == t.association.UserRoleID() {
		uc.logger.Warnw("requester tried to change own role", "user_role_id", t.association.UserRoleID())
		return nil, errors.NewForbiddenError(msgCannotChangeOwnRole)
	}

	active, err := uc.stillActive(ctx, t, activeStateID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.NewNotFoundError(msgTargetNotAssociated)
	}

	currentRole, err := uc.guard.RoleName(ctx, t.association.UserRoleID(), msgTargetRoleUnknown)
	if err != nil {
		return nil, err
	}

	desiredRole, err := uc.users.GetRoleNameByID(ctx, cmd.NewRoleID)
	if err != nil {
		if stderrors.Is(err, userservice.ErrNotFound) {
			uc.logger.Warnw("desired role not found", "role_id", cmd.NewRoleID)
			return nil, errors.NewBadRequestError(msgInvalidDesiredRole)
		}
		uc.logger.Errorw("failed to resolve desired role", "role_id", cmd.NewRoleID, "error", err)
		return nil, errors.NewInternalError(msgDesiredRoleUnresolved)
	}

	if currentRole == desiredRole {
		return nil, errors.NewBadRequestError(fmt.Sprintf("El colaborador ya tiene el rol '%s'", desiredRole))
	}

	perm, ok := collaborator.EditPermissionFor(desiredRole)
	if !ok {
		uc.logger.Warnw("desired role is not assignable", "role", desiredRole)
		return nil, errors.NewBadRequestError(msgInvalidDesiredRole)
	}

	denied := fmt.Sprintf("No tienes permiso para asignar el rol '%s'", desiredRole)
	if err := uc.guard.RequirePermission(ctx, req.membership.Association.UserRoleID(), perm, denied); err != nil {
		return nil, err
	}
	if !collaborator.InHierarchy(req.roleName) {
		uc.logger.Errorw("requester role missing from hierarchy", "requester_role", req.roleName)
		return nil, errors.NewInternalError(msgRequesterOutsideTree)
	}
	if !collaborator.CanAssign(req.roleName, desiredRole) {
		uc.logger.Warnw("role hierarchy forbids assignment", "requester_role", req.roleName, "desired_role", desiredRole)
		return nil, errors.NewForbiddenError(denied)
	}

	var newUserRoleID uint
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		id, err := uc.users.CreateUserRoleForRole(ctx, t.info.UserID, cmd.NewRoleID)
		if err != nil {
			return fmt.Errorf("failed to create user role: %w", err)
		}
		if err := t.association.Repoint(id); err != nil {
			return err
		}
		if err := uc.associations.Update(ctx, t.association); err != nil {
			return fmt.Errorf("failed to update user role farm: %w", err)
		}
		newUserRoleID = id
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update collaborator role",
			"user_role_farm_id", t.association.ID(),
			"error", err,
		)
		return nil, errors.NewInternalError(msgRoleUpdateFailed)
	}

	uc.logger.Infow("collaborator role updated",
		"user_role_farm_id", t.association.ID(),
		"new_user_role_id", newUserRoleID,
		"role", desiredRole,
	)

	return &EditCollaboratorRoleResult{
		Message:        fmt.Sprintf("Rol del colaborador '%s' actualizado a '%s' exitosamente", t.info.UserName, desiredRole),
		UserRoleFarmID: t.association.ID(),
		NewUserRoleID:  newUserRoleID,
		NewRole:        desiredRole,
	}, nil
}
