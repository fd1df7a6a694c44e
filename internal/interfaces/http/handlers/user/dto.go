package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/user/usecases"
	"yordam/internal/shared/errors"
)

type CreateUserRequest struct {
	FullName     string `json:"full_name" binding:"required,max=150"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required,oneof=user technician admin superadmin"`
	RegionID     *uint  `json:"region_id"`
	DepartmentID *uint  `json:"department_id"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user technician admin superadmin"`
}

type ToggleActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid user id")
	}
	return uint(id), nil
}

func parseListUsersQuery(c *gin.Context, actorID uint) (usecases.ListUsersQuery, error) {
	query := usecases.ListUsersQuery{
		ActorID: actorID,
		Role:    c.Query("role"),
		Search:  c.Query("search"),
	}

	if raw := c.Query("region_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, errors.NewBadRequestError("invalid region_id")
		}
		regionID := uint(parsed)
		query.RegionID = &regionID
	}

	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.NewBadRequestError("invalid active flag")
		}
		query.Active = &active
	}

	query.Page, _ = strconv.Atoi(c.Query("page"))
	query.PageSize, _ = strconv.Atoi(c.Query("page_size"))
	return query, nil
}
