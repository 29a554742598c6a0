package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/application/collaborator/dto"
	"github.com/coffeetech/farms/internal/application/collaborator/usecases"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/utils"
)

// CollaboratorHandler serves /collaborators. Every route takes the farm from
// the farm_id query parameter.
type CollaboratorHandler struct {
	listCollaboratorsUC    listCollaboratorsUseCase
	editCollaboratorRoleUC editCollaboratorRoleUseCase
	deleteCollaboratorUC   deleteCollaboratorUseCase
	logger                 logger.Interface
}

func NewCollaboratorHandler(
	listCollaboratorsUC listCollaboratorsUseCase,
	editCollaboratorRoleUC editCollaboratorRoleUseCase,
	deleteCollaboratorUC deleteCollaboratorUseCase,
	logger logger.Interface,
) *CollaboratorHandler {
	return &CollaboratorHandler{
		listCollaboratorsUC:    listCollaboratorsUC,
		editCollaboratorRoleUC: editCollaboratorRoleUC,
		deleteCollaboratorUC:   deleteCollaboratorUC,
		logger:                 logger,
	}
}

// ListCollaborators handles GET /collaborators/list-collaborators
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintQuery(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCollaboratorsUC.Execute(c.Request.Context(), usecases.ListCollaboratorsQuery{
		RequesterID: user.UserID,
		FarmID:      farmID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Colaboradores obtenidos exitosamente", result)
}

// EditCollaboratorRole handles POST /collaborators/edit-collaborator-role
func (h *CollaboratorHandler) EditCollaboratorRole(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintQuery(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.EditCollaboratorRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for edit collaborator role", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.editCollaboratorRoleUC.Execute(c.Request.Context(), usecases.EditCollaboratorRoleCommand{
		RequesterID:    user.UserID,
		FarmID:         farmID,
		CollaboratorID: req.CollaboratorID,
		NewRoleID:      req.NewRoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}

// DeleteCollaborator handles POST /collaborators/delete-collaborator
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintQuery(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.DeleteCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for delete collaborator", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.deleteCollaboratorUC.Execute(c.Request.Context(), usecases.DeleteCollaboratorCommand{
		RequesterID:    user.UserID,
		FarmID:         farmID,
		CollaboratorID: req.CollaboratorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}
