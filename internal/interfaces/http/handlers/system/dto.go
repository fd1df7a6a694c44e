package system

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"yordam/internal/shared/errors"
)

type CreateSystemRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"max=1000"`
}

type AddResponsibilityRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=technician admin"`
	RegionID  *uint  `json:"region_id"`
	IsDefault bool   `json:"is_default"`
}

func parseSystemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid system id")
	}
	return uint(id), nil
}
