package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/services/markdown"
)

type SendMessageCommand struct {
	TicketID   uint
	Text       string
	Attachment *ticket.Attachment
	Actor      *access.AccessContext
}

type SendMessageResult struct {
	MessageID uint `json:"message_id"`
	TicketID  uint `json:"ticket_id"`
}

type SendMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	historyRepo ticket.HistoryRepository
	notifier    *TicketNotifier
	txManager   TransactionManager
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewSendMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	historyRepo ticket.HistoryRepository,
	notifier *TicketNotifier,
	txManager TransactionManager,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		historyRepo: historyRepo,
		notifier:    notifier,
		txManager:   txManager,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	uc.logger.Infow("executing send message use case", "ticket_id", cmd.TicketID, "sender_id", cmd.Actor.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !cmd.Actor.IsParticipant(viewOf(t)) {
		return nil, errors.NewForbiddenError("only the creator and the assignee may write in this ticket")
	}

	text := uc.markdown.Sanitize(cmd.Text)

	msg, err := ticket.NewMessage(cmd.TicketID, cmd.Actor.UserID, text, cmd.Attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, msg); err != nil {
			return err
		}

		senderID := cmd.Actor.UserID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &senderID, vo.ActionComment, "", "", "")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.NewMessage(txCtx, t, uc.counterpart(t, cmd.Actor.UserID))
	})
	if err != nil {
		uc.logger.Errorw("failed to send ticket message", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket message sent successfully", "ticket_id", cmd.TicketID, "message_id", msg.ID())

	return &SendMessageResult{
		MessageID: msg.ID(),
		TicketID:  t.ID(),
	}, nil
}

// counterpart picks the other side of the conversation: creator writes
// to the assignee, assignee writes to the creator.
func (uc *SendMessageUseCase) counterpart(t *ticket.Ticket, senderID uint) []uint {
	if senderID == t.CreatorID() {
		if t.AssigneeID() != nil {
			return []uint{*t.AssigneeID()}
		}
		return nil
	}
	return []uint{t.CreatorID()}
}
