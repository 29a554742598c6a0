package dto

import "github.com/coffeetech/farms/internal/domain/farm"

type CreateFarmRequest struct {
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	AreaUnitID uint    `json:"area_unit_id" binding:"required,gt=0"`
}

type UpdateFarmRequest struct {
	FarmID     uint    `json:"farm_id" binding:"required,gt=0"`
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	AreaUnitID uint    `json:"area_unit_id" binding:"required,gt=0"`
}

// CreatedFarmDTO echoes the stored farm after create and update.
type CreatedFarmDTO struct {
	FarmID     uint    `json:"farm_id"`
	Name       string  `json:"name"`
	Area       float64 `json:"area"`
	AreaUnitID uint    `json:"area_unit_id"`
	AreaUnit   string  `json:"area_unit"`
}

// FarmDTO is a farm as seen by one of its collaborators.
type FarmDTO struct {
	FarmID      uint    `json:"farm_id"`
	Name        string  `json:"name"`
	Area        float64 `json:"area"`
	AreaUnitID  uint    `json:"area_unit_id"`
	AreaUnit    string  `json:"area_unit"`
	FarmStateID uint    `json:"farm_state_id"`
	FarmState   string  `json:"farm_state"`
	UserRoleID  uint    `json:"user_role_id"`
	Role        string  `json:"role"`
}

// FarmDetailDTO is served to sibling services without membership data.
type FarmDetailDTO struct {
	FarmID      uint    `json:"farm_id"`
	Name        string  `json:"name"`
	Area        float64 `json:"area"`
	AreaUnitID  uint    `json:"area_unit_id"`
	AreaUnit    string  `json:"area_unit"`
	FarmStateID uint    `json:"farm_state_id"`
	FarmState   string  `json:"farm_state"`
}

type ListFarmsResponse struct {
	Farms []FarmDTO `json:"farms"`
}

type GetFarmResponse struct {
	Farm FarmDTO `json:"farm"`
}

func ToFarmDTO(s *farm.Summary, role string) FarmDTO {
	return FarmDTO{
		FarmID:      s.FarmID,
		Name:        s.Name,
		Area:        s.Area,
		AreaUnitID:  s.AreaUnitID,
		AreaUnit:    s.AreaUnit,
		FarmStateID: s.FarmStateID,
		FarmState:   s.FarmState,
		UserRoleID:  s.UserRoleID,
		Role:        role,
	}
}

func ToFarmDetailDTO(s *farm.Summary) *FarmDetailDTO {
	return &FarmDetailDTO{
		FarmID:      s.FarmID,
		Name:        s.Name,
		Area:        s.Area,
		AreaUnitID:  s.AreaUnitID,
		AreaUnit:    s.AreaUnit,
		FarmStateID: s.FarmStateID,
		FarmState:   s.FarmState,
	}
}

func ToCreatedFarmDTO(f *farm.Farm, unit *farm.AreaUnit) *CreatedFarmDTO {
	return &CreatedFarmDTO{
		FarmID:     f.ID(),
		Name:       f.Name(),
		Area:       f.Area(),
		AreaUnitID: f.AreaUnitID(),
		AreaUnit:   unit.Name,
	}
}
