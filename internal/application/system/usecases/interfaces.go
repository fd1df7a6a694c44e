package usecases

import "context"

type CreateSystemExecutor interface {
	Execute(ctx context.Context, cmd CreateSystemCommand) (*CreateSystemResult, error)
}

type ListSystemsExecutor interface {
	Execute(ctx context.Context, query ListSystemsQuery) (*ListSystemsResult, error)
}

type DeleteSystemExecutor interface {
	Execute(ctx context.Context, cmd DeleteSystemCommand) error
}

type AddResponsibilityExecutor interface {
	Execute(ctx context.Context, cmd AddResponsibilityCommand) (*AddResponsibilityResult, error)
}

type RemoveResponsibilityExecutor interface {
	Execute(ctx context.Context, cmd RemoveResponsibilityCommand) error
}

type ListResponsiblesExecutor interface {
	Execute(ctx context.Context, query ListResponsiblesQuery) (*ListResponsiblesResult, error)
}
