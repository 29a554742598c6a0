package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
)

// UserService is the part of the user service the farm use cases call.
type UserService interface {
	access.RoleService
	CreateUserRole(ctx context.Context, userID uint, roleName string) (uint, error)
}
