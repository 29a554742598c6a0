package handlers

import (
	"context"

	"github.com/coffeetech/farms/internal/application/collaborator/dto"
	"github.com/coffeetech/farms/internal/application/collaborator/usecases"
)

type listCollaboratorsUseCase interface {
	Execute(ctx context.Context, query usecases.ListCollaboratorsQuery) (*dto.ListCollaboratorsResponse, error)
}

type editCollaboratorRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.EditCollaboratorRoleCommand) (*usecases.EditCollaboratorRoleResult, error)
}

type deleteCollaboratorUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteCollaboratorCommand) (*usecases.DeleteCollaboratorResult, error)
}
