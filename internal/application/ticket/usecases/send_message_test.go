package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/authorization"
)

func TestSendMessageUseCase_Execute_CreatorWritesToAssignee(t *testing.T) {
	tkt := mustTicket(t, 50, vo.StatusInProgress, 10, uintPtr(20))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}
	var savedMsg *ticket.Message
	mockMessages := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, msg *ticket.Message) error {
			savedMsg = msg
			return msg.SetID(7)
		},
	}
	var history []*ticket.HistoryEntry
	mockHistory := &mockHistoryRepository{
		SaveFunc: func(ctx context.Context, h *ticket.HistoryEntry) error {
			history = append(history, h)
			return nil
		},
	}

	useCase := NewSendMessageUseCase(
		mockTickets, mockMessages, mockHistory,
		noopNotifier(), &fakeTxManager{}, &mockMarkdownService{}, &mockLogger{},
	)

	result, err := useCase.Execute(context.Background(), SendMessageCommand{
		TicketID: 50,
		Text:     "any update on this?",
		Actor: &access.AccessContext{
			UserID: 10,
			Role:   authorization.RoleUser,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.MessageID)

	require.NotNil(t, savedMsg)
	assert.Equal(t, uint(10), savedMsg.SenderID())
	assert.Equal(t, "any update on this?", savedMsg.Text())

	require.Len(t, history, 1)
	assert.Equal(t, vo.ActionComment, history[0].Action())
}

func TestSendMessageUseCase_Execute_OutsiderForbidden(t *testing.T) {
	tkt := mustTicket(t, 50, vo.StatusInProgress, 10, uintPtr(20))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	useCase := NewSendMessageUseCase(
		mockTickets, &mockMessageRepository{}, &mockHistoryRepository{},
		noopNotifier(), &fakeTxManager{}, &mockMarkdownService{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), SendMessageCommand{
		TicketID: 50,
		Text:     "let me in",
		Actor: &access.AccessContext{
			UserID: 99,
			Role:   authorization.RoleUser,
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creator and the assignee")
}

func TestSendMessageUseCase_Execute_AdminNotParticipantForbidden(t *testing.T) {
	tkt := mustTicket(t, 50, vo.StatusInProgress, 10, uintPtr(20))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	useCase := NewSendMessageUseCase(
		mockTickets, &mockMessageRepository{}, &mockHistoryRepository{},
		noopNotifier(), &fakeTxManager{}, &mockMarkdownService{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), SendMessageCommand{
		TicketID: 50,
		Text:     "status please",
		Actor: &access.AccessContext{
			UserID:      30,
			Role:        authorization.RoleAdmin,
			SystemScope: access.UnrestrictedScope(),
			RegionScope: access.UnrestrictedScope(),
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creator and the assignee")
}

func TestSendMessageUseCase_Execute_EmptyTextWithoutAttachment(t *testing.T) {
	tkt := mustTicket(t, 50, vo.StatusInProgress, 10, uintPtr(20))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	useCase := NewSendMessageUseCase(
		mockTickets, &mockMessageRepository{}, &mockHistoryRepository{},
		noopNotifier(), &fakeTxManager{}, &mockMarkdownService{}, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), SendMessageCommand{
		TicketID: 50,
		Text:     "",
		Actor: &access.AccessContext{
			UserID: 10,
			Role:   authorization.RoleUser,
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")
}

func TestSendMessageUseCase_Execute_SanitizesText(t *testing.T) {
	tkt := mustTicket(t, 50, vo.StatusInProgress, 10, uintPtr(20))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}
	var savedMsg *ticket.Message
	mockMessages := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, msg *ticket.Message) error {
			savedMsg = msg
			return msg.SetID(8)
		},
	}
	md := &mockMarkdownService{
		SanitizeFunc: func(htmlContent string) string {
			return "clean"
		},
	}

	useCase := NewSendMessageUseCase(
		mockTickets, mockMessages, &mockHistoryRepository{},
		noopNotifier(), &fakeTxManager{}, md, &mockLogger{},
	)

	_, err := useCase.Execute(context.Background(), SendMessageCommand{
		TicketID: 50,
		Text:     "<img src=x onerror=alert(1)>",
		Actor: &access.AccessContext{
			UserID: 10,
			Role:   authorization.RoleUser,
		},
	})

	require.NoError(t, err)
	require.NotNil(t, savedMsg)
	assert.Equal(t, "clean", savedMsg.Text())
}
