package usecases

import (
	"context"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
)

// TransactionManager runs a function inside one database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func viewOf(t *ticket.Ticket) access.TicketView {
	return access.TicketView{
		SystemID:   t.SystemID(),
		RegionID:   t.RegionID(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
	}
}
