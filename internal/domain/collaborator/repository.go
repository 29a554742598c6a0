package collaborator

import "context"

// Repository persists farm role associations. Lookups that find nothing
// return (nil, nil).
type Repository interface {
	Create(ctx context.Context, urf *UserRoleFarm) error
	Update(ctx context.Context, urf *UserRoleFarm) error

	// FindForFarm returns the first row of farmID whose role-association is
	// one of userRoleIDs and whose state is stateID.
	FindForFarm(ctx context.Context, userRoleIDs []uint, farmID, stateID uint) (*UserRoleFarm, error)

	ListByFarm(ctx context.Context, farmID, stateID uint) ([]*UserRoleFarm, error)

	// UpdateStateByFarm moves every row of farmID to stateID.
	UpdateStateByFarm(ctx context.Context, farmID, stateID uint) (int64, error)
}
