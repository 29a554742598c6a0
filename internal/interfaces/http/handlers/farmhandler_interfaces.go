package handlers

import (
	"context"

	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/application/farm/usecases"
)

// Use case interfaces for FarmHandler

type createFarmUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateFarmCommand) (*dto.CreatedFarmDTO, error)
}

type listFarmsUseCase interface {
	Execute(ctx context.Context, query usecases.ListFarmsQuery) (*dto.ListFarmsResponse, error)
}

type getFarmUseCase interface {
	Execute(ctx context.Context, query usecases.GetFarmQuery) (*dto.GetFarmResponse, error)
}

type updateFarmUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateFarmCommand) (*dto.CreatedFarmDTO, error)
}

type deleteFarmUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteFarmCommand) error
}

type getFarmDetailUseCase interface {
	Execute(ctx context.Context, farmID uint) (*dto.FarmDetailDTO, error)
}
