package models

import (
	"time"

	"github.com/coffeetech/farms/internal/shared/constants"
)

// FarmModel represents the database persistence model for farms
type FarmModel struct {
	ID          uint    `gorm:"column:farm_id;primaryKey"`
	Name        string  `gorm:"not null;size:255;index:idx_farms_name"`
	Area        float64 `gorm:"not null;precision:10;scale:2"`
	AreaUnitID  uint    `gorm:"not null;index"`
	FarmStateID uint    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (FarmModel) TableName() string {
	return constants.TableFarms
}
