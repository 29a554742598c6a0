package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/application/farm/dto"
	"github.com/coffeetech/farms/internal/application/farm/usecases"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/utils"
)

type FarmHandler struct {
	createFarmUC    createFarmUseCase
	listFarmsUC     listFarmsUseCase
	getFarmUC       getFarmUseCase
	updateFarmUC    updateFarmUseCase
	deleteFarmUC    deleteFarmUseCase
	getFarmDetailUC getFarmDetailUseCase
	logger          logger.Interface
}

func NewFarmHandler(
	createFarmUC createFarmUseCase,
	listFarmsUC listFarmsUseCase,
	getFarmUC getFarmUseCase,
	updateFarmUC updateFarmUseCase,
	deleteFarmUC deleteFarmUseCase,
	getFarmDetailUC getFarmDetailUseCase,
	logger logger.Interface,
) *FarmHandler {
	return &FarmHandler{
		createFarmUC:    createFarmUC,
		listFarmsUC:     listFarmsUC,
		getFarmUC:       getFarmUC,
		updateFarmUC:    updateFarmUC,
		deleteFarmUC:    deleteFarmUC,
		getFarmDetailUC: getFarmDetailUC,
		logger:          logger,
	}
}

// CreateFarm handles POST /farm/create-farm
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create farm", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createFarmUC.Execute(c.Request.Context(), usecases.CreateFarmCommand{
		UserID:     user.UserID,
		Name:       req.Name,
		Area:       req.Area,
		AreaUnitID: req.AreaUnitID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finca creada y usuario asignado correctamente", result)
}

// ListFarms handles POST /farm/list-farm
func (h *FarmHandler) ListFarms(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	result, err := h.listFarmsUC.Execute(c.Request.Context(), usecases.ListFarmsQuery{UserID: user.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lista de fincas obtenida exitosamente", result)
}

// GetFarm handles GET /farm/get-farm/:farm_id
func (h *FarmHandler) GetFarm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintParam(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFarmUC.Execute(c.Request.Context(), usecases.GetFarmQuery{
		UserID: user.UserID,
		FarmID: farmID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finca obtenida exitosamente", result)
}

// UpdateFarm handles POST /farm/update-farm
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	var req dto.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update farm", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateFarmUC.Execute(c.Request.Context(), usecases.UpdateFarmCommand{
		UserID:     user.UserID,
		FarmID:     req.FarmID,
		Name:       req.Name,
		Area:       req.Area,
		AreaUnitID: req.AreaUnitID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finca actualizada correctamente", result)
}

// DeleteFarm handles POST /farm/delete-farm/:farm_id
func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	user, ok := sessionUser(c)
	if !ok {
		return
	}

	farmID, err := utils.ParseUintParam(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFarmUC.Execute(c.Request.Context(), usecases.DeleteFarmCommand{
		UserID: user.UserID,
		FarmID: farmID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finca puesta en estado 'Inactivo' correctamente", nil)
}

// GetFarmDetail handles GET /farms-service/get-farm/:farm_id. It is called
// by sibling services, carries no session and answers with the bare detail
// object.
func (h *FarmHandler) GetFarmDetail(c *gin.Context) {
	farmID, err := utils.ParseUintParam(c, "farm_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFarmDetailUC.Execute(c.Request.Context(), farmID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
