// Package access holds the requester-authorization preamble shared by the
// farm, plot and collaborator use cases: resolve the farm, resolve the
// requester's active association with it, and check a permission name.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/domain/state"
	apperrors "github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	MsgFarmNotFound         = "Finca no encontrada"
	MsgNotAssociated        = "No estás asociado a esta finca"
	MsgRoleIDsUnavailable   = "No se pudieron obtener los roles del usuario"
	MsgPermsUnavailable     = "No se pudieron obtener los permisos del rol"
	MsgRequesterRoleUnknown = "Rol del usuario no encontrado"
)

// RoleService is the part of the user service every guarded use case needs.
type RoleService interface {
	GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error)
	GetRoleNameForUserRole(ctx context.Context, userRoleID uint) string
	GetPermissionsForUserRole(ctx context.Context, userRoleID uint) ([]string, error)
}

// Policy selects the checks Authorize runs and the messages it fails with.
// Empty messages fall back to the Msg* defaults.
type Policy struct {
	// ActiveFarmOnly treats an inactive farm as missing.
	ActiveFarmOnly bool
	FarmNotFound   string
	NotAssociated  string

	// Permission, when set, must be granted to the requester's association.
	Permission       string
	PermissionDenied string
}

// Membership is the outcome of a successful Authorize.
type Membership struct {
	Farm *farm.Farm

	// Association is the requester's active row for Farm.
	Association *collaborator.UserRoleFarm

	// UserRoleIDs are all role-associations the requester holds.
	UserRoleIDs []uint

	ActiveAssociationStateID uint
}

type Guard struct {
	farms        farm.Repository
	associations collaborator.Repository
	states       *state.Lookup
	roles        RoleService
	logger       logger.Interface
}

func NewGuard(
	farms farm.Repository,
	associations collaborator.Repository,
	states *state.Lookup,
	roles RoleService,
	logger logger.Interface,
) *Guard {
	return &Guard{
		farms:        farms,
		associations: associations,
		states:       states,
		roles:        roles,
		logger:       logger,
	}
}

// Authorize runs the farm → state → role ids → association → permission
// chain for userID on farmID.
func (g *Guard) Authorize(ctx context.Context, userID, farmID uint, p Policy) (*Membership, error) {
	f, err := g.Farm(ctx, farmID, p.ActiveFarmOnly, orDefault(p.FarmNotFound, MsgFarmNotFound))
	if err != nil {
		return nil, err
	}

	m, err := g.Associate(ctx, userID, farmID, orDefault(p.NotAssociated, MsgNotAssociated))
	if err != nil {
		return nil, err
	}
	m.Farm = f

	if p.Permission != "" {
		denied := orDefault(p.PermissionDenied, orDefault(p.NotAssociated, MsgNotAssociated))
		if err := g.RequirePermission(ctx, m.Association.UserRoleID(), p.Permission, denied); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Farm loads farmID, failing with a 404 carrying notFoundMsg.
func (g *Guard) Farm(ctx context.Context, farmID uint, activeOnly bool, notFoundMsg string) (*farm.Farm, error) {
	f, err := g.farms.GetByID(ctx, farmID)
	if err != nil {
		g.logger.Errorw("failed to load farm", "farm_id", farmID, "error", err)
		return nil, apperrors.NewInternalError("failed to load farm")
	}
	if f == nil {
		g.logger.Warnw("farm not found", "farm_id", farmID)
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}

	if activeOnly {
		active, err := g.ActiveState(ctx, g.states.Farm)
		if err != nil {
			return nil, err
		}
		if !f.IsInState(active) {
			g.logger.Warnw("farm is not active", "farm_id", farmID)
			return nil, apperrors.NewNotFoundError(notFoundMsg)
		}
	}
	return f, nil
}

// Associate resolves the requester's active association with farmID.
func (g *Guard) Associate(ctx context.Context, userID, farmID uint, notAssociatedMsg string) (*Membership, error) {
	activeURF, err := g.ActiveState(ctx, g.states.UserRoleFarm)
	if err != nil {
		return nil, err
	}

	roleIDs, err := g.UserRoleIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	urf, err := g.associations.FindForFarm(ctx, roleIDs, farmID, activeURF)
	if err != nil {
		g.logger.Errorw("failed to look up farm association", "farm_id", farmID, "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to look up farm association")
	}
	if urf == nil {
		g.logger.Warnw("user is not associated with farm", "farm_id", farmID, "user_id", userID)
		return nil, apperrors.NewForbiddenError(notAssociatedMsg)
	}

	return &Membership{
		Association:              urf,
		UserRoleIDs:              roleIDs,
		ActiveAssociationStateID: activeURF,
	}, nil
}

// UserRoleIDs fetches the requester's role-association ids. Any failure is a
// 500: no authorization decision is made on a failed fetch.
func (g *Guard) UserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids, err := g.roles.GetUserRoleIDs(ctx, userID)
	if err != nil {
		g.logger.Errorw("failed to fetch user role ids", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError(MsgRoleIDsUnavailable)
	}
	return ids, nil
}

// RequirePermission fails with a 403 carrying deniedMsg unless userRoleID is
// granted perm.
func (g *Guard) RequirePermission(ctx context.Context, userRoleID uint, perm, deniedMsg string) error {
	perms, err := g.roles.GetPermissionsForUserRole(ctx, userRoleID)
	if err != nil {
		g.logger.Errorw("failed to fetch role permissions", "user_role_id", userRoleID, "error", err)
		return apperrors.NewInternalError(MsgPermsUnavailable)
	}
	if !collaborator.HasPermission(perms, perm) {
		g.logger.Warnw("permission denied", "user_role_id", userRoleID, "permission", perm)
		return apperrors.NewForbiddenError(deniedMsg)
	}
	return nil
}

// RoleName resolves the role of userRoleID, failing with a 500 carrying
// unknownMsg when the user service cannot name it.
func (g *Guard) RoleName(ctx context.Context, userRoleID uint, unknownMsg string) (string, error) {
	name := g.roles.GetRoleNameForUserRole(ctx, userRoleID)
	if name == "" || name == collaborator.RoleUnknown {
		g.logger.Errorw("role name not found", "user_role_id", userRoleID)
		return "", apperrors.NewInternalError(unknownMsg)
	}
	return name, nil
}

// ActiveState resolves the Activo state through resolve.
func (g *Guard) ActiveState(ctx context.Context, resolve func(context.Context, string) (*state.State, error)) (uint, error) {
	return g.stateID(ctx, resolve, state.NameActive)
}

// InactiveState resolves the Inactivo state through resolve.
func (g *Guard) InactiveState(ctx context.Context, resolve func(context.Context, string) (*state.State, error)) (uint, error) {
	return g.stateID(ctx, resolve, state.NameInactive)
}

// States exposes the lookup for use cases that resolve states directly.
func (g *Guard) States() *state.Lookup { return g.states }

func (g *Guard) stateID(ctx context.Context, resolve func(context.Context, string) (*state.State, error), name string) (uint, error) {
	s, err := resolve(ctx, name)
	if err != nil {
		return 0, StateError(g.logger, err)
	}
	return s.ID, nil
}

// StateError maps a state lookup failure to a 400 for missing reference
// data and a 500 otherwise.
func StateError(log logger.Interface, err error) error {
	var nf *state.NotFoundError
	if errors.As(err, &nf) {
		log.Errorw("state reference row missing", "category", nf.Category.String(), "name", nf.Name)
		return apperrors.NewBadRequestError(fmt.Sprintf("Estado '%s' no encontrado para '%s'", nf.Name, nf.Category))
	}
	log.Errorw("failed to resolve state", "error", err)
	return apperrors.NewInternalError("failed to resolve state")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
