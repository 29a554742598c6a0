package dto

import (
	"github.com/coffeetech/farms/internal/domain/collaborator"
	"github.com/coffeetech/farms/internal/shared/mapper"
)

type CollaboratorDTO struct {
	UserRoleID uint   `json:"user_role_id"`
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	RoleID     uint   `json:"role_id"`
	RoleName   string `json:"role_name"`
}

func ToCollaboratorDTO(info collaborator.Info) CollaboratorDTO {
	return CollaboratorDTO{
		UserRoleID: info.UserRoleID,
		UserID:     info.UserID,
		UserName:   info.UserName,
		UserEmail:  info.UserEmail,
		RoleID:     info.RoleID,
		RoleName:   info.RoleName,
	}
}

func ToCollaboratorDTOs(infos []collaborator.Info) []CollaboratorDTO {
	if len(infos) == 0 {
		return []CollaboratorDTO{}
	}
	return mapper.MapSlice(infos, ToCollaboratorDTO)
}

type ListCollaboratorsResponse struct {
	Collaborators []CollaboratorDTO `json:"collaborators"`
}

// EditCollaboratorRoleRequest is the body of POST
// /collaborators/edit-collaborator-role.
type EditCollaboratorRoleRequest struct {
	CollaboratorID uint `json:"collaborator_id" binding:"required,gt=0"`
	NewRoleID      uint `json:"new_role_id" binding:"required,gt=0"`
}

// DeleteCollaboratorRequest is the body of POST
// /collaborators/delete-collaborator.
type DeleteCollaboratorRequest struct {
	CollaboratorID uint `json:"collaborator_id" binding:"required,gt=0"`
}
