// Package plot holds the plot entity, its location value object and the
// coffee variety reference data.
package plot

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxNameLength = 100

// Plot is a parcel of a farm planted with one coffee variety.
type Plot struct {
	id              uint
	name            string
	coffeeVarietyID uint
	location        Location
	farmID          uint
	plotStateID     uint
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPlot(name string, coffeeVarietyID uint, location Location, farmID, plotStateID uint) (*Plot, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if coffeeVarietyID == 0 {
		return nil, fmt.Errorf("coffee variety ID is required")
	}
	if farmID == 0 {
		return nil, fmt.Errorf("farm ID is required")
	}

	now := time.Now()
	return &Plot{
		name:            name,
		coffeeVarietyID: coffeeVarietyID,
		location:        location,
		farmID:          farmID,
		plotStateID:     plotStateID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructPlot rebuilds a plot from persistence.
func ReconstructPlot(id uint, name string, coffeeVarietyID uint, location Location, farmID, plotStateID uint, createdAt, updatedAt time.Time) (*Plot, error) {
	if id == 0 {
		return nil, fmt.Errorf("plot ID cannot be zero")
	}
	return &Plot{
		id:              id,
		name:            name,
		coffeeVarietyID: coffeeVarietyID,
		location:        location,
		farmID:          farmID,
		plotStateID:     plotStateID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (p *Plot) ID() uint              { return p.id }
func (p *Plot) Name() string          { return p.name }
func (p *Plot) CoffeeVarietyID() uint { return p.coffeeVarietyID }
func (p *Plot) Location() Location    { return p.location }
func (p *Plot) FarmID() uint          { return p.farmID }
func (p *Plot) PlotStateID() uint     { return p.plotStateID }
func (p *Plot) CreatedAt() time.Time  { return p.createdAt }
func (p *Plot) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Plot) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plot ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plot) UpdateGeneralInfo(name string, coffeeVarietyID uint) error {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return err
	}
	if coffeeVarietyID == 0 {
		return fmt.Errorf("coffee variety ID is required")
	}
	p.name = name
	p.coffeeVarietyID = coffeeVarietyID
	p.updatedAt = time.Now()
	return nil
}

func (p *Plot) UpdateLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	p.updatedAt = time.Now()
	return nil
}

// Reactivate moves an inactive plot back to activeStateID, overwriting its
// variety and location. The name is kept.
func (p *Plot) Reactivate(activeStateID, coffeeVarietyID uint, location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if coffeeVarietyID == 0 {
		return fmt.Errorf("coffee variety ID is required")
	}
	p.plotStateID = activeStateID
	p.coffeeVarietyID = coffeeVarietyID
	p.location = location
	p.updatedAt = time.Now()
	return nil
}

func (p *Plot) SetState(plotStateID uint) {
	p.plotStateID = plotStateID
	p.updatedAt = time.Now()
}
