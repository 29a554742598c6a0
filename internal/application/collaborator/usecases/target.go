package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgTargetNotInFarm = "Colaborador no encontrado en esta finca"
	msgTargetNotFound  = "Colaborador no encontrado"
)

// requester is the authorized caller of an edit or delete.
type requester struct {
	membership *access.Membership
	roleName   string
}

// target is the collaborator an edit or delete acts on.
type target struct {
	association *collaborator.UserRoleFarm
	info        collaborator.Info
}

// targetResolver holds the steps edit and delete share.
type targetResolver struct {
	guard        *access.Guard
	associations collaborator.Repository
	users        UserService
	logger       logger.Interface
}

// authorizeRequester runs the farm, state, association and role-name checks
// for the requester.
func (r *targetResolver) authorizeRequester(ctx context.Context, requesterID, farmID uint) (*requester, error) {
	m, err := r.guard.Authorize(ctx, requesterID, farmID, access.Policy{})
	if err != nil {
		return nil, err
	}

	roleName, err := r.guard.RoleName(ctx, m.Association.UserRoleID(), access.MsgRequesterRoleUnknown)
	if err != nil {
		return nil, err
	}
	return &requester{membership: m, roleName: roleName}, nil
}

// resolve finds the collaborator's active association with farmID among the
// role-associations they hold, then fetches their identity.
func (r *targetResolver) resolve(ctx context.Context, collaboratorID, farmID, activeStateID uint) (*target, error) {
	roleIDs, err := r.users.GetUserRoleIDs(ctx, collaboratorID)
	if err != nil {
		r.logger.Errorw("failed to fetch collaborator role ids",
			"collaborator_id", collaboratorID,
			"error", err,
		)
		return nil, errors.NewNotFoundError(msgTargetNotInFarm)
	}

	urf, err := r.associations.FindForFarm(ctx, roleIDs, farmID, activeStateID)
	if err != nil {
		r.logger.Errorw("failed to look up collaborator association",
			"collaborator_id", collaboratorID,
			"farm_id", farmID,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to look up collaborator association")
	}
	if urf == nil {
		r.logger.Warnw("collaborator not found in farm", "collaborator_id", collaboratorID, "farm_id", farmID)
		return nil, errors.NewNotFoundError(msgTargetNotInFarm)
	}

	infos, err := r.users.GetCollaboratorsInfo(ctx, []uint{urf.UserRoleID()})
	if err != nil {
		r.logger.Errorw("failed to fetch collaborator info",
			"user_role_id", urf.UserRoleID(),
			"error", err,
		)
		return nil, errors.NewNotFoundError(msgTargetNotFound)
	}
	info, ok := pickInfo(infos, urf.UserRoleID())
	if !ok {
		r.logger.Warnw("collaborator info empty", "user_role_id", urf.UserRoleID())
		return nil, errors.NewNotFoundError(msgTargetNotFound)
	}
	if info.UserID == 0 {
		info.UserID = collaboratorID
	}

	return &target{association: urf, info: info}, nil
}

// stillActive re-reads the target row, guarding against a concurrent
// delete between resolution and mutation.
func (r *targetResolver) stillActive(ctx context.Context, t *target, activeStateID uint) (bool, error) {
	urf, err := r.associations.FindForFarm(ctx, []uint{t.association.UserRoleID()}, t.association.FarmID(), activeStateID)
	if err != nil {
		r.logger.Errorw("failed to re-read collaborator association", "id", t.association.ID(), "error", err)
		return false, errors.NewInternalError("failed to look up collaborator association")
	}
	if urf == nil {
		return false, nil
	}
	t.association = urf
	return true, nil
}

// pickInfo prefers the record of userRoleID and falls back to the first.
func pickInfo(infos []collaborator.Info, userRoleID uint) (collaborator.Info, bool) {
	if len(infos) == 0 {
		return collaborator.Info{}, false
	}
	for _, info := range infos {
		if info.UserRoleID == userRoleID {
			return info, true
		}
	}
	return infos[0], true
}
