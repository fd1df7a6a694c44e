package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/user/usecases"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

// UserHandler serves the account directory. Who may do what is decided
// in the use cases; the handler only carries the actor id through.
type UserHandler struct {
	createUserUC   usecases.CreateUserExecutor
	listUsersUC    usecases.ListUsersExecutor
	changeRoleUC   usecases.ChangeUserRoleExecutor
	toggleActiveUC usecases.ToggleUserActiveExecutor
	resetPassUC    usecases.ResetPasswordExecutor
	deleteUserUC   usecases.DeleteUserExecutor
	logger         logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	changeRoleUC usecases.ChangeUserRoleExecutor,
	toggleActiveUC usecases.ToggleUserActiveExecutor,
	resetPassUC usecases.ResetPasswordExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:   createUserUC,
		listUsersUC:    listUsersUC,
		changeRoleUC:   changeRoleUC,
		toggleActiveUC: toggleActiveUC,
		resetPassUC:    resetPassUC,
		deleteUserUC:   deleteUserUC,
		logger:         logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		ActorID:      middleware.UserIDFrom(c),
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		RegionID:     req.RegionID,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query, err := parseListUsersQuery(c, middleware.UserIDFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// ChangeRole handles PATCH /users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeUserRoleCommand{
		ActorID: middleware.UserIDFrom(c),
		UserID:  userID,
		NewRole: req.Role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", nil)
}

// ToggleActive handles PATCH /users/:id/active
func (h *UserHandler) ToggleActive(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if err := h.toggleActiveUC.Execute(c.Request.Context(), usecases.ToggleUserActiveCommand{
		ActorID: middleware.UserIDFrom(c),
		UserID:  userID,
		Active:  *req.Active,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account updated", nil)
}

// ResetPassword handles POST /users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if err := h.resetPassUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		ActorID:     middleware.UserIDFrom(c),
		UserID:      userID,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset", nil)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		ActorID: middleware.UserIDFrom(c),
		UserID:  userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
