package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yordam/internal/domain/access"
	"yordam/internal/domain/user"
	"yordam/internal/infrastructure/auth"
	"yordam/internal/shared/constants"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

// userLoader is the slice of the user repository the middleware needs.
type userLoader interface {
	GetByID(ctx context.Context, userID uint) (*user.User, error)
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      userLoader
	resolver   *access.Resolver
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, users userLoader, resolver *access.Resolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		resolver:   resolver,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token, re-reads the account and
// rebuilds the access context from the responsibility table. Scope
// changes and deactivation therefore take effect on the next request,
// not on the next token refresh.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}

		if !u.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "account is deactivated")
			c.Abort()
			return
		}

		ac, err := m.resolver.ResolveAccess(c.Request.Context(), u)
		if err != nil {
			m.logger.Errorw("failed to resolve access context", "error", err, "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve access")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(u.Role()))
		c.Set(constants.ContextKeyAccessCtx, ac)

		c.Next()
	}
}

// UserIDFrom returns the authenticated user id stored by RequireAuth.
func UserIDFrom(c *gin.Context) uint {
	v, _ := c.Get(constants.ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// RoleFrom returns the authenticated role stored by RequireAuth.
func RoleFrom(c *gin.Context) string {
	v, _ := c.Get(constants.ContextKeyUserRole)
	role, _ := v.(string)
	return role
}

// AccessFrom returns the access context stored by RequireAuth.
func AccessFrom(c *gin.Context) *access.AccessContext {
	v, _ := c.Get(constants.ContextKeyAccessCtx)
	ac, _ := v.(*access.AccessContext)
	return ac
}
