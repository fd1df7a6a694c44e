package usecases

import "context"

type ListRegionsExecutor interface {
	Execute(ctx context.Context, query ListRegionsQuery) (*ListRegionsResult, error)
}

type CreateDepartmentExecutor interface {
	Execute(ctx context.Context, cmd CreateDepartmentCommand) (*CreateDepartmentResult, error)
}

type ToggleDepartmentExecutor interface {
	Execute(ctx context.Context, cmd ToggleDepartmentCommand) error
}

type DeleteDepartmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteDepartmentCommand) error
}

type ListDepartmentsExecutor interface {
	Execute(ctx context.Context, query ListDepartmentsQuery) (*ListDepartmentsResult, error)
}
