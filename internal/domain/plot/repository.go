package plot

import "context"

// Repository persists plots. Lookups that find nothing return (nil, nil).
type Repository interface {
	Create(ctx context.Context, p *Plot) error
	Update(ctx context.Context, p *Plot) error

	// GetByIDInState returns the plot only when it points at plotStateID.
	GetByIDInState(ctx context.Context, id, plotStateID uint) (*Plot, error)

	// FindByFarmAndName returns the first plot of farmID named name in
	// plotStateID.
	FindByFarmAndName(ctx context.Context, farmID uint, name string, plotStateID uint) (*Plot, error)

	// ExistsByFarmAndName ignores excludeID when it is non-zero.
	ExistsByFarmAndName(ctx context.Context, farmID uint, name string, plotStateID, excludeID uint) (bool, error)

	ListByFarm(ctx context.Context, farmID, plotStateID uint) ([]*Detail, error)
	GetDetail(ctx context.Context, id, plotStateID uint) (*Detail, error)

	GetCoffeeVariety(ctx context.Context, id uint) (*CoffeeVariety, error)
	ListCoffeeVarieties(ctx context.Context) ([]*CoffeeVariety, error)
}
