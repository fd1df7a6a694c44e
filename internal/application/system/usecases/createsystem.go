package usecases

import (
	"context"
	"fmt"
	"time"

	"yordam/internal/domain/system"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type CreateSystemCommand struct {
	Name        string
	Description string
}

type CreateSystemResult struct {
	SystemID  uint      `json:"system_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSystemUseCase struct {
	systemRepo system.SystemRepository
	logger     logger.Interface
}

func NewCreateSystemUseCase(systemRepo system.SystemRepository, logger logger.Interface) *CreateSystemUseCase {
	return &CreateSystemUseCase{
		systemRepo: systemRepo,
		logger:     logger,
	}
}

func (uc *CreateSystemUseCase) Execute(ctx context.Context, cmd CreateSystemCommand) (*CreateSystemResult, error) {
	uc.logger.Infow("executing create system use case", "name", cmd.Name)

	if existing, _ := uc.systemRepo.GetByName(ctx, cmd.Name); existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("system %q already exists", cmd.Name))
	}

	sys, err := system.NewSystem(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.systemRepo.Save(ctx, sys); err != nil {
		uc.logger.Errorw("failed to save system", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create system")
	}

	uc.logger.Infow("system created successfully", "system_id", sys.ID(), "name", sys.Name())

	return &CreateSystemResult{
		SystemID:  sys.ID(),
		Name:      sys.Name(),
		CreatedAt: sys.CreatedAt(),
	}, nil
}
