package notification

import (
	"fmt"
	"time"
)

// NotificationType classifies what event produced the notification.
type NotificationType string

const (
	TypeNewTicket      NotificationType = "new_ticket"
	TypeStatusChanged  NotificationType = "status_changed"
	TypeNewMessage     NotificationType = "new_message"
	TypeRatingRequest  NotificationType = "rating_request"
	TypeTicketAssigned NotificationType = "ticket_assigned"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeNewTicket:      true,
	TypeStatusChanged:  true,
	TypeNewMessage:     true,
	TypeRatingRequest:  true,
	TypeTicketAssigned: true,
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func (t NotificationType) String() string {
	return string(t)
}

// Notification is a row created as a side effect of routing and status
// machine events. It is mutated only by the recipient marking it read.
type Notification struct {
	id        uint
	userID    uint
	ntype     NotificationType
	title     string
	text      string
	url       string
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, ntype NotificationType, title, text, url string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:    userID,
		ntype:     ntype,
		title:     title,
		text:      text,
		url:       url,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	ntype NotificationType,
	title, text, url string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !ntype.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", ntype)
	}

	return &Notification{
		id:        id,
		userID:    userID,
		ntype:     ntype,
		title:     title,
		text:      text,
		url:       url,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint               { return n.id }
func (n *Notification) UserID() uint           { return n.userID }
func (n *Notification) Type() NotificationType { return n.ntype }
func (n *Notification) Title() string          { return n.title }
func (n *Notification) Text() string           { return n.text }
func (n *Notification) URL() string            { return n.url }
func (n *Notification) IsRead() bool           { return n.isRead }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. Only the recipient may do this; the
// gate is the caller's.
func (n *Notification) MarkAsRead() {
	n.isRead = true
}

// TicketURL is the deep link attached to ticket notifications.
func TicketURL(ticketID uint) string {
	return fmt.Sprintf("/tickets/%d/", ticketID)
}
