package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/application/catalog/dto"
	"github.com/coffeetech/farms/internal/shared/utils"
)

type listAreaUnitsUseCase interface {
	Execute(ctx context.Context) ([]dto.AreaUnitDTO, error)
}

type listCoffeeVarietiesUseCase interface {
	Execute(ctx context.Context) ([]dto.CoffeeVarietyDTO, error)
}

// UtilsHandler serves the public reference catalogs.
type UtilsHandler struct {
	listAreaUnitsUC       listAreaUnitsUseCase
	listCoffeeVarietiesUC listCoffeeVarietiesUseCase
}

func NewUtilsHandler(listAreaUnitsUC listAreaUnitsUseCase, listCoffeeVarietiesUC listCoffeeVarietiesUseCase) *UtilsHandler {
	return &UtilsHandler{
		listAreaUnitsUC:       listAreaUnitsUC,
		listCoffeeVarietiesUC: listCoffeeVarietiesUC,
	}
}

// ListAreaUnits handles GET /utils/area-units
func (h *UtilsHandler) ListAreaUnits(c *gin.Context) {
	units, err := h.listAreaUnitsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Unidades de área obtenidas correctamente", units)
}

// ListCoffeeVarieties handles GET /utils/list-coffee-varieties
func (h *UtilsHandler) ListCoffeeVarieties(c *gin.Context) {
	varieties, err := h.listCoffeeVarietiesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Variedades de café obtenidas correctamente", varieties)
}
