package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/domain/collaborator"
)

// UserService is the part of the user service the collaborator workflows
// call.
type UserService interface {
	access.RoleService
	GetCollaboratorsInfo(ctx context.Context, userRoleIDs []uint) ([]collaborator.Info, error)
	GetRoleNameByID(ctx context.Context, roleID uint) (string, error)
	CreateUserRoleForRole(ctx context.Context, userID, roleID uint) (uint, error)
	DeleteUserRole(ctx context.Context, userRoleID uint) error
}
