package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/region"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type DeleteDepartmentCommand struct {
	DepartmentID uint
}

// DepartmentMemberCounter is the slice of the user repository the
// delete gate needs.
type DepartmentMemberCounter interface {
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}

// DeleteDepartmentUseCase removes a department. Departments with
// members cannot be deleted; user rows must keep a valid reference.
type DeleteDepartmentUseCase struct {
	departmentRepo region.DepartmentRepository
	userCounter    DepartmentMemberCounter
	logger         logger.Interface
}

func NewDeleteDepartmentUseCase(
	departmentRepo region.DepartmentRepository,
	userCounter DepartmentMemberCounter,
	logger logger.Interface,
) *DeleteDepartmentUseCase {
	return &DeleteDepartmentUseCase{
		departmentRepo: departmentRepo,
		userCounter:    userCounter,
		logger:         logger,
	}
}

func (uc *DeleteDepartmentUseCase) Execute(ctx context.Context, cmd DeleteDepartmentCommand) error {
	uc.logger.Infow("executing delete department use case", "department_id", cmd.DepartmentID)

	if _, err := uc.departmentRepo.GetByID(ctx, cmd.DepartmentID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("department %d not found", cmd.DepartmentID))
	}

	members, err := uc.userCounter.CountByDepartment(ctx, cmd.DepartmentID)
	if err != nil {
		uc.logger.Errorw("failed to count department members", "department_id", cmd.DepartmentID, "error", err)
		return errors.NewInternalError("failed to check department references")
	}
	if members > 0 {
		return errors.NewConflictError(fmt.Sprintf("department has %d members and cannot be deleted", members))
	}

	if err := uc.departmentRepo.Delete(ctx, cmd.DepartmentID); err != nil {
		uc.logger.Errorw("failed to delete department", "department_id", cmd.DepartmentID, "error", err)
		return errors.NewInternalError("failed to delete department")
	}

	uc.logger.Infow("department deleted successfully", "department_id", cmd.DepartmentID)
	return nil
}
