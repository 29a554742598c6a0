package models

import (
	"time"

	"github.com/coffeetech/farms/internal/shared/constants"
)

// PlotModel represents the database persistence model for plots.
// Names are not unique at the database level; only active plots of a farm
// must have distinct names.
type PlotModel struct {
	ID              uint    `gorm:"column:plot_id;primaryKey"`
	Name            string  `gorm:"not null;size:255;index:idx_plots_farm_name,priority:2"`
	Latitude        float64 `gorm:"not null;precision:11;scale:8"`
	Longitude       float64 `gorm:"not null;precision:11;scale:8"`
	Altitude        float64 `gorm:"not null;precision:10;scale:2"`
	CoffeeVarietyID uint    `gorm:"not null;index"`
	FarmID          uint    `gorm:"not null;index:idx_plots_farm_name,priority:1"`
	PlotStateID     uint    `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PlotModel) TableName() string {
	return constants.TablePlots
}
