package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/user/usecases"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	refreshUC    usecases.RefreshTokenExecutor
	getProfileUC usecases.GetProfileExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	getProfileUC usecases.GetProfileExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		getProfileUC: getProfileUC,
		logger:       logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toLoginResponse(result))
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTokenResponse(result.Tokens))
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: middleware.UserIDFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ProfileResponse{
		User:             result.User,
		Responsibilities: result.Responsibilities,
	})
}
