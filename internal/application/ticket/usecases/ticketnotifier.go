package usecases

import (
	"context"

	"yordam/internal/domain/notification"
	"yordam/internal/domain/ticket"
	"yordam/internal/domain/user"
	"yordam/internal/shared/i18n"
	"yordam/internal/shared/logger"
)

// Mailer mirrors a stored notification to email. Implementations must
// treat delivery as best effort.
type Mailer interface {
	SendNotification(to string, lang i18n.Lang, n *notification.Notification) error
}

// TicketNotifier fans one ticket event out to its recipients. Each
// recipient gets the text in their own language; the in-app rows are
// written in one batch and the email mirror never fails the caller.
type TicketNotifier struct {
	userRepo         user.UserRepository
	notificationRepo notification.NotificationRepository
	mailer           Mailer
	logger           logger.Interface
}

func NewTicketNotifier(
	userRepo user.UserRepository,
	notificationRepo notification.NotificationRepository,
	mailer Mailer,
	logger logger.Interface,
) *TicketNotifier {
	return &TicketNotifier{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

func (n *TicketNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket, recipients []uint) error {
	return n.send(ctx, recipients, notification.TypeNewTicket, t.ID(), func(lang i18n.Lang) (string, string) {
		return i18n.T(lang, "notification.new_ticket", t.Number(), t.Title()), t.Title()
	})
}

func (n *TicketNotifier) StatusChanged(ctx context.Context, t *ticket.Ticket, recipients []uint) error {
	status := string(t.Status())
	return n.send(ctx, recipients, notification.TypeStatusChanged, t.ID(), func(lang i18n.Lang) (string, string) {
		label := i18n.T(lang, "status."+status)
		return i18n.T(lang, "notification.status_changed", t.Number(), label), t.Title()
	})
}

func (n *TicketNotifier) NewMessage(ctx context.Context, t *ticket.Ticket, recipients []uint) error {
	return n.send(ctx, recipients, notification.TypeNewMessage, t.ID(), func(lang i18n.Lang) (string, string) {
		return i18n.T(lang, "notification.new_message", t.Number()), t.Title()
	})
}

func (n *TicketNotifier) RatingRequest(ctx context.Context, t *ticket.Ticket) error {
	return n.send(ctx, []uint{t.CreatorID()}, notification.TypeRatingRequest, t.ID(), func(lang i18n.Lang) (string, string) {
		return i18n.T(lang, "notification.rating_request", t.Number()), t.Title()
	})
}

func (n *TicketNotifier) Assigned(ctx context.Context, t *ticket.Ticket, assigneeID uint) error {
	return n.send(ctx, []uint{assigneeID}, notification.TypeTicketAssigned, t.ID(), func(lang i18n.Lang) (string, string) {
		return i18n.T(lang, "notification.ticket_assigned", t.Number()), t.Title()
	})
}

func (n *TicketNotifier) send(
	ctx context.Context,
	recipients []uint,
	ntype notification.NotificationType,
	ticketID uint,
	build func(lang i18n.Lang) (title, text string),
) error {
	url := notification.TicketURL(ticketID)

	seen := make(map[uint]bool, len(recipients))
	batch := make([]*notification.Notification, 0, len(recipients))
	mails := make([]mailTarget, 0, len(recipients))

	for _, userID := range recipients {
		if seen[userID] {
			continue
		}
		seen[userID] = true

		u, err := n.userRepo.GetByID(ctx, userID)
		if err != nil {
			n.logger.Warnw("skipping unknown notification recipient", "user_id", userID, "error", err)
			continue
		}
		if !u.IsActive() {
			continue
		}

		lang := i18n.ParseLang(u.Language())
		title, text := build(lang)

		item, err := notification.NewNotification(userID, ntype, title, text, url)
		if err != nil {
			return err
		}

		batch = append(batch, item)
		mails = append(mails, mailTarget{email: u.Email(), lang: lang, notification: item})
	}

	if len(batch) == 0 {
		return nil
	}

	if err := n.notificationRepo.SaveAll(ctx, batch); err != nil {
		return err
	}

	if n.mailer != nil {
		for _, m := range mails {
			if err := n.mailer.SendNotification(m.email, m.lang, m.notification); err != nil {
				n.logger.Warnw("failed to mirror notification to email",
					"email", m.email, "notification_id", m.notification.ID(), "error", err)
			}
		}
	}

	return nil
}

type mailTarget struct {
	email        string
	lang         i18n.Lang
	notification *notification.Notification
}
