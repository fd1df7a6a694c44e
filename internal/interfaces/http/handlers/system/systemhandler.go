package system

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/system/usecases"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type SystemHandler struct {
	createSystemUC     usecases.CreateSystemExecutor
	listSystemsUC      usecases.ListSystemsExecutor
	deleteSystemUC     usecases.DeleteSystemExecutor
	addRespUC          usecases.AddResponsibilityExecutor
	removeRespUC       usecases.RemoveResponsibilityExecutor
	listResponsiblesUC usecases.ListResponsiblesExecutor
	logger             logger.Interface
}

func NewSystemHandler(
	createSystemUC usecases.CreateSystemExecutor,
	listSystemsUC usecases.ListSystemsExecutor,
	deleteSystemUC usecases.DeleteSystemExecutor,
	addRespUC usecases.AddResponsibilityExecutor,
	removeRespUC usecases.RemoveResponsibilityExecutor,
	listResponsiblesUC usecases.ListResponsiblesExecutor,
	logger logger.Interface,
) *SystemHandler {
	return &SystemHandler{
		createSystemUC:     createSystemUC,
		listSystemsUC:      listSystemsUC,
		deleteSystemUC:     deleteSystemUC,
		addRespUC:          addRespUC,
		removeRespUC:       removeRespUC,
		listResponsiblesUC: listResponsiblesUC,
		logger:             logger,
	}
}

// CreateSystem handles POST /systems
func (h *SystemHandler) CreateSystem(c *gin.Context) {
	var req CreateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create system", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createSystemUC.Execute(c.Request.Context(), usecases.CreateSystemCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "System created successfully")
}

// ListSystems handles GET /systems
func (h *SystemHandler) ListSystems(c *gin.Context) {
	result, err := h.listSystemsUC.Execute(c.Request.Context(), usecases.ListSystemsQuery{
		ActiveOnly: c.Query("active_only") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Systems)
}

// DeleteSystem handles DELETE /systems/:id
func (h *SystemHandler) DeleteSystem(c *gin.Context) {
	systemID, err := parseSystemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSystemUC.Execute(c.Request.Context(), usecases.DeleteSystemCommand{
		SystemID: systemID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddResponsibility handles POST /systems/:id/responsibilities
func (h *SystemHandler) AddResponsibility(c *gin.Context) {
	systemID, err := parseSystemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.addRespUC.Execute(c.Request.Context(), usecases.AddResponsibilityCommand{
		SystemID:  systemID,
		UserID:    req.UserID,
		RegionID:  req.RegionID,
		Role:      req.Role,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Responsibility added")
}

// RemoveResponsibility handles DELETE /systems/:id/responsibilities/:respID
func (h *SystemHandler) RemoveResponsibility(c *gin.Context) {
	respID, err := strconv.ParseUint(c.Param("respID"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid responsibility id"))
		return
	}

	if err := h.removeRespUC.Execute(c.Request.Context(), usecases.RemoveResponsibilityCommand{
		ResponsibilityID: uint(respID),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListResponsibles handles GET /systems/:id/responsibles
func (h *SystemHandler) ListResponsibles(c *gin.Context) {
	systemID, err := parseSystemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	regionID, err := strconv.ParseUint(c.Query("region_id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("region_id is required"))
		return
	}

	result, err := h.listResponsiblesUC.Execute(c.Request.Context(), usecases.ListResponsiblesQuery{
		SystemID: systemID,
		RegionID: uint(regionID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
