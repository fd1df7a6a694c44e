package usecases

import (
	"context"

	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type ListUsersQuery struct {
	ActorID  uint
	Role     string
	RegionID *uint
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users      []*UserDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if _, err := loadActor(ctx, uc.userRepo, query.ActorID); err != nil {
		return nil, err
	}

	filter := user.UserFilter{
		RegionID: query.RegionID,
		Active:   query.Active,
		Search:   query.Search,
	}
	if query.Role != "" {
		role := authorization.UserRole(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role: " + query.Role)
		}
		filter.Role = &role
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	dtos := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}

	return &ListUsersResult{
		Users:      dtos,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
