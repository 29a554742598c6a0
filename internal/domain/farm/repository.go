package farm

import "context"

// Repository persists farms and answers the membership-scoped queries used by
// the farm use cases. Lookups that find nothing return (nil, nil).
type Repository interface {
	Create(ctx context.Context, f *Farm) error
	Update(ctx context.Context, f *Farm) error
	GetByID(ctx context.Context, id uint) (*Farm, error)

	// GetDetail returns the joined projection of one farm regardless of
	// membership. UserRoleID is zero.
	GetDetail(ctx context.Context, id uint) (*Summary, error)

	// ExistsActiveName reports whether a farm named name exists among the
	// farms matched by filter, ignoring excludeID when it is non-zero.
	ExistsActiveName(ctx context.Context, name string, filter MembershipFilter, excludeID uint) (bool, error)

	ListForUserRoles(ctx context.Context, filter MembershipFilter) ([]*Summary, error)
	GetForUserRoles(ctx context.Context, farmID uint, filter MembershipFilter) (*Summary, error)

	GetAreaUnit(ctx context.Context, id uint) (*AreaUnit, error)
	ListAreaUnits(ctx context.Context) ([]*AreaUnit, error)
}
