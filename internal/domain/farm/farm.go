// Package farm holds the farm aggregate and its read models.
package farm

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength = 50
	MaxArea       = 10000
)

// Farm is the farm aggregate root. Its lifecycle state is a reference into
// the farm_states table.
type Farm struct {
	id          uint
	name        string
	area        float64
	areaUnitID  uint
	farmStateID uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFarm validates the input and builds an unsaved farm in the given state.
func NewFarm(name string, area float64, areaUnitID, farmStateID uint) (*Farm, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, area, areaUnitID); err != nil {
		return nil, err
	}
	if farmStateID == 0 {
		return nil, fmt.Errorf("farm state ID is required")
	}

	now := time.Now()
	return &Farm{
		name:        name,
		area:        area,
		areaUnitID:  areaUnitID,
		farmStateID: farmStateID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructFarm rebuilds a farm from persistence without re-validating
// business rules.
func ReconstructFarm(id uint, name string, area float64, areaUnitID, farmStateID uint, createdAt, updatedAt time.Time) (*Farm, error) {
	if id == 0 {
		return nil, fmt.Errorf("farm ID cannot be zero")
	}
	return &Farm{
		id:          id,
		name:        name,
		area:        area,
		areaUnitID:  areaUnitID,
		farmStateID: farmStateID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ValidateName reports the first rule a farm name breaks.
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

// ValidateArea reports the first rule a farm area breaks.
func ValidateArea(area float64) error {
	if area <= 0 {
		return ErrAreaNotPositive
	}
	if area > MaxArea {
		return ErrAreaTooLarge
	}
	return nil
}

func validate(name string, area float64, areaUnitID uint) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateArea(area); err != nil {
		return err
	}
	if areaUnitID == 0 {
		return ErrAreaUnitRequired
	}
	return nil
}

func (f *Farm) ID() uint             { return f.id }
func (f *Farm) Name() string         { return f.name }
func (f *Farm) Area() float64        { return f.area }
func (f *Farm) AreaUnitID() uint     { return f.areaUnitID }
func (f *Farm) FarmStateID() uint    { return f.farmStateID }
func (f *Farm) CreatedAt() time.Time { return f.createdAt }
func (f *Farm) UpdatedAt() time.Time { return f.updatedAt }

// SetID is called by the repository after insert.
func (f *Farm) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("farm ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("farm ID cannot be zero")
	}
	f.id = id
	return nil
}

// Update replaces the editable fields after validating them.
func (f *Farm) Update(name string, area float64, areaUnitID uint) error {
	name = strings.TrimSpace(name)
	if err := validate(name, area, areaUnitID); err != nil {
		return err
	}
	f.name = name
	f.area = area
	f.areaUnitID = areaUnitID
	f.updatedAt = time.Now()
	return nil
}

func (f *Farm) SetState(farmStateID uint) {
	f.farmStateID = farmStateID
	f.updatedAt = time.Now()
}

// IsInState reports whether the farm currently points at stateID.
func (f *Farm) IsInState(stateID uint) bool {
	return f.farmStateID == stateID
}
