package dto

import (
	"github.com/coffeetech/farms/internal/domain/farm"
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

type AreaUnitDTO struct {
	AreaUnitID   uint   `json:"area_unit_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type CoffeeVarietyDTO struct {
	CoffeeVarietyID uint   `json:"coffee_variety_id"`
	Name            string `json:"name"`
}

func ToAreaUnitDTOs(units []*farm.AreaUnit) []AreaUnitDTO {
	if len(units) == 0 {
		return []AreaUnitDTO{}
	}
	return mapper.MapSlice(units, func(u *farm.AreaUnit) AreaUnitDTO {
		return AreaUnitDTO{AreaUnitID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation}
	})
}

func ToCoffeeVarietyDTOs(varieties []*plot.CoffeeVariety) []CoffeeVarietyDTO {
	if len(varieties) == 0 {
		return []CoffeeVarietyDTO{}
	}
	return mapper.MapSlice(varieties, func(v *plot.CoffeeVariety) CoffeeVarietyDTO {
		return CoffeeVarietyDTO{CoffeeVarietyID: v.ID, Name: v.Name}
	})
}
