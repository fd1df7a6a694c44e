package usecases

import (
	"context"

	"yordam/internal/application/ticket/dto"
	"yordam/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type TakeTicketExecutor interface {
	Execute(ctx context.Context, cmd TakeTicketCommand) (*TakeTicketResult, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type ReopenTicketExecutor interface {
	Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error)
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListUnassignedExecutor interface {
	Execute(ctx context.Context, query ListUnassignedQuery) (*ListUnassignedResult, error)
}

type QuickStatsExecutor interface {
	Execute(ctx context.Context, query QuickStatsQuery) (*ticket.QuickStats, error)
}
