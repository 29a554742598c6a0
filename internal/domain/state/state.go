// Package state resolves lifecycle states (Activo / Inactivo) of farms,
// plots and farm role associations. State identifiers live in reference
// tables and are looked up by name at runtime.
package state

import (
	"context"
	"errors"
	"fmt"
)

// Category is the closed set of entities that carry a lifecycle state.
type Category int

const (
	CategoryFarm Category = iota + 1
	CategoryPlot
	CategoryUserRoleFarm
)

func (c Category) String() string {
	switch c {
	case CategoryFarm:
		return "Farms"
	case CategoryPlot:
		return "Plots"
	case CategoryUserRoleFarm:
		return "user_role_farm"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

const (
	NameActive   = "Activo"
	NameInactive = "Inactivo"
)

// State is one row of a state reference table.
type State struct {
	ID       uint
	Name     string
	Category Category
}

var ErrStateNotFound = errors.New("state not found")

// NotFoundError reports a missing reference row. It matches ErrStateNotFound
// under errors.Is.
type NotFoundError struct {
	Category Category
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("state '%s' not found for '%s'", e.Name, e.Category)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrStateNotFound
}

// Repository reads the three state tables. A missing row is (nil, nil).
type Repository interface {
	FindFarmState(ctx context.Context, name string) (*State, error)
	FindPlotState(ctx context.Context, name string) (*State, error)
	FindUserRoleFarmState(ctx context.Context, name string) (*State, error)
}
