package dto

import (
	"github.com/coffeetech/farms/internal/domain/plot"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

type CreatePlotRequest struct {
	Name            string  `json:"name"`
	CoffeeVarietyID uint    `json:"coffee_variety_id" binding:"required,gt=0"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	FarmID          uint    `json:"farm_id" binding:"required,gt=0"`
}

type UpdatePlotGeneralInfoRequest struct {
	PlotID          uint   `json:"plot_id" binding:"required,gt=0"`
	Name            string `json:"name"`
	CoffeeVarietyID uint   `json:"coffee_variety_id" binding:"required,gt=0"`
}

type UpdatePlotLocationRequest struct {
	PlotID    uint    `json:"plot_id" binding:"required,gt=0"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// PlotDTO is returned by create-plot.
type PlotDTO struct {
	PlotID          uint    `json:"plot_id"`
	Name            string  `json:"name"`
	CoffeeVarietyID uint    `json:"coffee_variety_id"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	FarmID          uint    `json:"farm_id"`
	Reactivated     bool    `json:"reactivated,omitempty"`
}

type PlotGeneralInfoDTO struct {
	PlotID            uint   `json:"plot_id"`
	Name              string `json:"name"`
	CoffeeVarietyName string `json:"coffee_variety_name"`
}

type PlotLocationDTO struct {
	PlotID    uint    `json:"plot_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

type PlotDetailDTO struct {
	PlotID            uint    `json:"plot_id"`
	Name              string  `json:"name"`
	CoffeeVarietyID   uint    `json:"coffee_variety_id"`
	CoffeeVarietyName string  `json:"coffee_variety_name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Altitude          float64 `json:"altitude"`
	FarmID            uint    `json:"farm_id"`
}

type ListPlotsResponse struct {
	Plots []PlotDetailDTO `json:"plots"`
}

type GetPlotResponse struct {
	Plot PlotDetailDTO `json:"plot"`
}

func ToPlotDTO(p *plot.Plot, reactivated bool) *PlotDTO {
	loc := p.Location()
	return &PlotDTO{
		PlotID:          p.ID(),
		Name:            p.Name(),
		CoffeeVarietyID: p.CoffeeVarietyID(),
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		Altitude:        loc.Altitude,
		FarmID:          p.FarmID(),
		Reactivated:     reactivated,
	}
}

func ToPlotLocationDTO(p *plot.Plot) *PlotLocationDTO {
	loc := p.Location()
	return &PlotLocationDTO{
		PlotID:    p.ID(),
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Altitude:  loc.Altitude,
	}
}

func ToPlotDetailDTO(d *plot.Detail) PlotDetailDTO {
	return PlotDetailDTO{
		PlotID:            d.PlotID,
		Name:              d.Name,
		CoffeeVarietyID:   d.CoffeeVarietyID,
		CoffeeVarietyName: d.CoffeeVarietyName,
		Latitude:          d.Location.Latitude,
		Longitude:         d.Location.Longitude,
		Altitude:          d.Location.Altitude,
		FarmID:            d.FarmID,
	}
}

func ToPlotDetailDTOs(details []*plot.Detail) []PlotDetailDTO {
	if len(details) == 0 {
		return []PlotDetailDTO{}
	}
	return mapper.MapSlice(details, ToPlotDetailDTO)
}
