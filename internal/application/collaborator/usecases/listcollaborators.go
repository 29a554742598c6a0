package usecases

import (
	"context"

	"github.com/coffeetech/farms/internal/application/access"
	"github.com/coffeetech/farms/internal/application/collaborator/dto"
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/errors"
	"github.com/coffeetech/farms/internal/shared/logger"
)

const (
	msgCannotReadCollaborators  = "No tienes permiso para ver los colaboradores de esta finca"
	msgCollaboratorsUnavailable = "No se pudo obtener la información de los colaboradores"
)

type ListCollaboratorsQuery struct {
	RequesterID uint
	FarmID      uint
}

type ListCollaboratorsUseCase struct {
	guard        *access.Guard
	associations collaborator.Repository
	users        UserService
	logger       logger.Interface
}

func NewListCollaboratorsUseCase(
	guard *access.Guard,
	associations collaborator.Repository,
	users UserService,
	logger logger.Interface,
) *ListCollaboratorsUseCase {
	return &ListCollaboratorsUseCase{
		guard:        guard,
		associations: associations,
		users:        users,
		logger:       logger,
	}
}

func (uc *ListCollaboratorsUseCase) Execute(ctx context.Context, query ListCollaboratorsQuery) (*dto.ListCollaboratorsResponse, error) {
	uc.logger.Infow("listing collaborators", "farm_id", query.FarmID, "requester_id", query.RequesterID)

	m, err := uc.guard.Authorize(ctx, query.RequesterID, query.FarmID, access.Policy{
		NotAssociated:    msgCannotReadCollaborators,
		Permission:       collaborator.PermReadCollaborators,
		PermissionDenied: msgCannotReadCollaborators,
	})
	if err != nil {
		return nil, err
	}

	rows, err := uc.associations.ListByFarm(ctx, query.FarmID, m.ActiveAssociationStateID)
	if err != nil {
		uc.logger.Errorw("failed to list farm associations", "farm_id", query.FarmID, "error", err)
		return nil, errors.NewInternalError("failed to list farm associations")
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserRoleID())
	}

	infos, err := uc.users.GetCollaboratorsInfo(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to fetch collaborators info", "farm_id", query.FarmID, "error", err)
		return nil, errors.NewInternalError(msgCollaboratorsUnavailable)
	}

	return &dto.ListCollaboratorsResponse{Collaborators: dto.ToCollaboratorDTOs(infos)}, nil
}
