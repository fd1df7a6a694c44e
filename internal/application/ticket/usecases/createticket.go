package usecases

import (
	"context"
	"fmt"
	"time"

	"yordam/internal/domain/routing"
	"yordam/internal/domain/system"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/services/markdown"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	SystemID    uint
	Priority    string
	CreatorID   uint
	Attachment  *ticket.Attachment
}

type CreateTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	AssigneeID *uint     `json:"assignee_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.UserRepository
	systemRepo  system.SystemRepository
	router      *routing.Router
	notifier    *TicketNotifier
	txManager   TransactionManager
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.UserRepository,
	systemRepo system.SystemRepository,
	router *routing.Router,
	notifier *TicketNotifier,
	txManager TransactionManager,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		systemRepo:  systemRepo,
		router:      router,
		notifier:    notifier,
		txManager:   txManager,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	creator, err := uc.userRepo.GetByID(ctx, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.CreatorID))
	}
	if creator.RegionID() == nil {
		return nil, errors.NewValidationError("creator has no region; cannot place the ticket")
	}

	sys, err := uc.systemRepo.GetByID(ctx, cmd.SystemID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("system %d not found", cmd.SystemID))
	}
	if !sys.IsActive() {
		return nil, errors.NewValidationError("system is not accepting tickets")
	}

	description := uc.markdown.Sanitize(cmd.Description)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		description,
		cmd.SystemID,
		*creator.RegionID(),
		cmd.CreatorID,
		vo.Priority(cmd.Priority),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Attachment != nil {
		newTicket.SetAttachment(cmd.Attachment)
	}

	route, err := uc.router.RouteNewTicket(ctx, newTicket.SystemID(), newTicket.RegionID())
	if err != nil {
		uc.logger.Errorw("failed to route ticket", "error", err)
		return nil, errors.NewInternalError("failed to route ticket")
	}

	if route.AssigneeID != nil {
		if _, err := newTicket.AssignTo(*route.AssigneeID); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		if err := newTicket.SetNumber(ticket.FormatNumber(newTicket.CreatedAt(), newTicket.ID())); err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, newTicket); err != nil {
			return err
		}

		creatorID := cmd.CreatorID
		entry, err := ticket.NewHistoryEntry(
			newTicket.ID(), &creatorID, vo.ActionCreated, "", string(newTicket.Status()), "")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		if route.AssigneeID != nil {
			assigned, err := ticket.NewHistoryEntry(
				newTicket.ID(), nil, vo.ActionAssigned, "", fmt.Sprintf("%d", *route.AssigneeID), "auto-routed")
			if err != nil {
				return err
			}
			if err := uc.historyRepo.Save(txCtx, assigned); err != nil {
				return err
			}
		}

		return uc.notifier.TicketCreated(txCtx, newTicket, route.Recipients)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "number", newTicket.Number(), "assignee_id", route.AssigneeID)

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Number:     newTicket.Number(),
		Status:     string(newTicket.Status()),
		AssigneeID: newTicket.AssigneeID(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}
