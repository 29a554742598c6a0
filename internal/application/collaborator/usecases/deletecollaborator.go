package usecases

import (
	"context"
	"fmt"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/db"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgTargetNotActive       = "El colaborador no está asociado activamente a esta finca"
	msgCannotRemoveSelf      = "No puedes eliminar tu propia asociación con la finca"
	msgCollaboratorRoleUnset = "Rol del colaborador no encontrado"
	msgDeleteFailed          = "Error al eliminar el colaborador"
)

type DeleteCollaboratorCommand struct {
	RequesterID    uint
	FarmID         uint
	CollaboratorID uint
}

type DeleteCollaboratorResult struct {
	Message        string
	UserRoleFarmID uint
}

// DeleteCollaboratorUseCase soft-deletes a collaborator's farm association
// and then removes the role-association in the user service.
type DeleteCollaboratorUseCase struct {
	targetResolver
	tx db.Transactor
}

func NewDeleteCollaboratorUseCase(
	guard *access.Guard,
	associations collaborator.Repository,
	users UserService,
	tx db.Transactor,
	logger logger.Interface,
) *DeleteCollaboratorUseCase {
	return &DeleteCollaboratorUseCase{
		targetResolver: targetResolver{
			guard:        guard,
			associations: associations,
			users:        users,
			logger:       logger,
		},
		tx: tx,
	}
}

func (uc *DeleteCollaboratorUseCase) Execute(ctx context.Context, cmd DeleteCollaboratorCommand) (*DeleteCollaboratorResult, error) {
	uc.logger.Infow("deleting collaborator",
		"farm_id", cmd.FarmID,
		"requester_id", cmd.RequesterID,
		"collaborator_id", cmd.CollaboratorID,
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

	active, err := uc.stillActive(ctx, t, activeStateID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.NewNotFoundError(msgTargetNotActive)
	}

	if req.membership.Association.UserRoleID() == t.association.UserRoleID() {
		uc.logger.Warnw("requester tried to remove own association", "user_role_id", t.association.UserRoleID())
		return nil, errors.NewForbiddenError(msgCannotRemoveSelf)
	}

	targetRole, err := uc.guard.RoleName(ctx, t.association.UserRoleID(), msgCollaboratorRoleUnset)
	if err != nil {
		return nil, err
	}

	perm, ok := collaborator.DeletePermissionFor(targetRole)
	if !ok {
		uc.logger.Warnw("collaborator role cannot be removed", "role", targetRole)
		return nil, errors.NewBadRequestError(fmt.Sprintf("Rol '%s' no reconocido para eliminación", targetRole))
	}

	denied := fmt.Sprintf("No tienes permiso para eliminar a un colaborador con rol '%s'", targetRole)
	if err := uc.guard.RequirePermission(ctx, req.membership.Association.UserRoleID(), perm, denied); err != nil {
		return nil, err
	}

	inactiveStateID, err := uc.guard.InactiveState(ctx, uc.guard.States().UserRoleFarm)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		t.association.SetState(inactiveStateID)
		return uc.associations.Update(ctx, t.association)
	})
	if err != nil {
		uc.logger.Errorw("failed to deactivate collaborator association",
			"user_role_farm_id", t.association.ID(),
			"error", err,
		)
		return nil, errors.NewInternalError(msgDeleteFailed)
	}

	// The farm row is already inactive; a remote failure leaves an orphaned
	// role-association in the user service.
	if err := uc.users.DeleteUserRole(ctx, t.association.UserRoleID()); err != nil {
		uc.logger.Errorw("failed to delete remote user role",
			"user_role_id", t.association.UserRoleID(),
			"error", err,
		)
		return nil, errors.NewInternalError(msgDeleteFailed)
	}

	uc.logger.Infow("collaborator deleted",
		"user_role_farm_id", t.association.ID(),
		"role", targetRole,
	)

	return &DeleteCollaboratorResult{
		Message:        fmt.Sprintf("Colaborador '%s' eliminado exitosamente de la finca '%s'", t.info.UserName, req.membership.Farm.Name()),
		UserRoleFarmID: t.association.ID(),
	}, nil
}
