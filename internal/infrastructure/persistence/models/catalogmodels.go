package models

import "github.com/coffeetech/farms/internal/shared/constants"

type AreaUnitModel struct {
	ID           uint   `gorm:"column:area_unit_id;primaryKey"`
	Name         string `gorm:"not null;size:255;uniqueIndex"`
	Abbreviation string `gorm:"not null;size:10;uniqueIndex"`
}

func (AreaUnitModel) TableName() string {
	return constants.TableAreaUnits
}

type CoffeeVarietyModel struct {
	ID   uint   `gorm:"column:coffee_variety_id;primaryKey"`
	Name string `gorm:"not null;size:255;uniqueIndex"`
}

func (CoffeeVarietyModel) TableName() string {
	return constants.TableCoffeeVarieties
}
