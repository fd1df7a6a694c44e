package organization

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/organization/usecases"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type OrganizationHandler struct {
	listRegionsUC     usecases.ListRegionsExecutor
	createDeptUC      usecases.CreateDepartmentExecutor
	toggleDeptUC      usecases.ToggleDepartmentExecutor
	deleteDeptUC      usecases.DeleteDepartmentExecutor
	listDepartmentsUC usecases.ListDepartmentsExecutor
	logger            logger.Interface
}

func NewOrganizationHandler(
	listRegionsUC usecases.ListRegionsExecutor,
	createDeptUC usecases.CreateDepartmentExecutor,
	toggleDeptUC usecases.ToggleDepartmentExecutor,
	deleteDeptUC usecases.DeleteDepartmentExecutor,
	listDepartmentsUC usecases.ListDepartmentsExecutor,
	logger logger.Interface,
) *OrganizationHandler {
	return &OrganizationHandler{
		listRegionsUC:     listRegionsUC,
		createDeptUC:      createDeptUC,
		toggleDeptUC:      toggleDeptUC,
		deleteDeptUC:      deleteDeptUC,
		listDepartmentsUC: listDepartmentsUC,
		logger:            logger,
	}
}

type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	RegionID uint   `json:"region_id" binding:"required"`
}

type ToggleDepartmentRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ListRegions handles GET /regions
func (h *OrganizationHandler) ListRegions(c *gin.Context) {
	result, err := h.listRegionsUC.Execute(c.Request.Context(), usecases.ListRegionsQuery{
		ActiveOnly: c.Query("active_only") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Regions)
}

// ListDepartments handles GET /departments
func (h *OrganizationHandler) ListDepartments(c *gin.Context) {
	query := usecases.ListDepartmentsQuery{
		ActiveOnly: c.Query("active_only") == "true",
	}

	if raw := c.Query("region_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid region_id"))
			return
		}
		regionID := uint(parsed)
		query.RegionID = &regionID
	}

	result, err := h.listDepartmentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Departments)
}

// CreateDepartment handles POST /departments
func (h *OrganizationHandler) CreateDepartment(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create department", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createDeptUC.Execute(c.Request.Context(), usecases.CreateDepartmentCommand{
		Name:     req.Name,
		RegionID: req.RegionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Department created successfully")
}

// ToggleDepartment handles PATCH /departments/:id/active
func (h *OrganizationHandler) ToggleDepartment(c *gin.Context) {
	departmentID, err := parseDepartmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if err := h.toggleDeptUC.Execute(c.Request.Context(), usecases.ToggleDepartmentCommand{
		DepartmentID: departmentID,
		Active:       *req.Active,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department updated", nil)
}

// DeleteDepartment handles DELETE /departments/:id
func (h *OrganizationHandler) DeleteDepartment(c *gin.Context) {
	departmentID, err := parseDepartmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDeptUC.Execute(c.Request.Context(), usecases.DeleteDepartmentCommand{
		DepartmentID: departmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseDepartmentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid department id")
	}
	return uint(id), nil
}
