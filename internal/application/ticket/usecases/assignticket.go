package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/access"
	"yordam/internal/domain/system"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	Actor      *access.AccessContext
}

type AssignTicketResult struct {
	TicketID   uint `json:"ticket_id"`
	AssigneeID uint `json:"assignee_id"`
	Reassigned bool `json:"reassigned"`
}

type AssignTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.UserRepository
	respRepo    system.ResponsibilityRepository
	notifier    *TicketNotifier
	txManager   TransactionManager
	logger      logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.UserRepository,
	respRepo system.ResponsibilityRepository,
	notifier *TicketNotifier,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		respRepo:    respRepo,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "actor_id", cmd.Actor.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !cmd.Actor.Role.IsAdmin() && !cmd.Actor.Role.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only admins may assign tickets")
	}
	if !cmd.Actor.CanSeeTicket(viewOf(t)) {
		return nil, errors.NewForbiddenError("ticket is outside your scope")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.AssigneeID))
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee is deactivated")
	}

	resps, err := uc.respRepo.ListByUserAndRole(ctx, cmd.AssigneeID, system.SystemRoleTechnician)
	if err != nil {
		return nil, errors.NewInternalError("failed to check assignee responsibilities")
	}
	holds := false
	for _, resp := range resps {
		if resp.SystemID() == t.SystemID() {
			holds = true
			break
		}
	}
	if !holds {
		return nil, errors.NewValidationError("assignee holds no technician responsibility for this system")
	}

	oldAssignee := t.AssigneeID()

	reassigned, err := t.AssignTo(cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		action := vo.ActionAssigned
		oldValue := ""
		if reassigned {
			action = vo.ActionReassigned
			oldValue = fmt.Sprintf("%d", *oldAssignee)
		}

		actorID := cmd.Actor.UserID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &actorID, action, oldValue, fmt.Sprintf("%d", cmd.AssigneeID), "")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.Assigned(txCtx, t, cmd.AssigneeID)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned successfully",
		"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "reassigned", reassigned)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
		Reassigned: reassigned,
	}, nil
}
