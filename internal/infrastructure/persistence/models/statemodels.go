package models

import "github.com/coffeetech/farms/internal/shared/constants"

// FarmStateModel is a row of the farm_states reference table
type FarmStateModel struct {
	ID   uint   `gorm:"column:farm_state_id;primaryKey"`
	Name string `gorm:"not null;size:45;uniqueIndex"`
}

func (FarmStateModel) TableName() string {
	return constants.TableFarmStates
}

// PlotStateModel is a row of the plot_states reference table
type PlotStateModel struct {
	ID   uint   `gorm:"column:plot_state_id;primaryKey"`
	Name string `gorm:"not null;size:45;uniqueIndex"`
}

func (PlotStateModel) TableName() string {
	return constants.TablePlotStates
}

// UserRoleFarmStateModel is a row of the user_role_farm_states reference table
type UserRoleFarmStateModel struct {
	ID   uint   `gorm:"column:user_role_farm_state_id;primaryKey"`
	Name string `gorm:"not null;size:45;uniqueIndex"`
}

func (UserRoleFarmStateModel) TableName() string {
	return constants.TableUserRoleFarmStates
}
