package state

import (
	"context"
	"fmt"
)

// Lookup exposes one typed resolver per category. Every resolver returns a
// *NotFoundError when the reference row is missing.
type Lookup struct {
	repo Repository
}

func NewLookup(repo Repository) *Lookup {
	return &Lookup{repo: repo}
}

func (l *Lookup) Farm(ctx context.Context, name string) (*State, error) {
	return resolve(ctx, CategoryFarm, name, l.repo.FindFarmState)
}

func (l *Lookup) Plot(ctx context.Context, name string) (*State, error) {
	return resolve(ctx, CategoryPlot, name, l.repo.FindPlotState)
}

func (l *Lookup) UserRoleFarm(ctx context.Context, name string) (*State, error) {
	return resolve(ctx, CategoryUserRoleFarm, name, l.repo.FindUserRoleFarmState)
}

func resolve(ctx context.Context, c Category, name string, find func(context.Context, string) (*State, error)) (*State, error) {
	s, err := find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s state %q: %w", c, name, err)
	}
	if s == nil {
		return nil, &NotFoundError{Category: c, Name: name}
	}
	s.Category = c
	return s, nil
}
