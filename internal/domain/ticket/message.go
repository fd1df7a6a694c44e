package ticket

import (
	"fmt"
	"time"
)

// Message is one entry in a ticket's chat log. The log is append-only
// and ordered by creation time; messages are never edited or deleted.
type Message struct {
	id         uint
	ticketID   uint
	senderID   uint
	text       string
	attachment *Attachment
	createdAt  time.Time
}

func NewMessage(ticketID, senderID uint, text string, attachment *Attachment) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if len(text) == 0 && attachment == nil {
		return nil, fmt.Errorf("message text is required")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("message text exceeds maximum length of 5000 characters")
	}

	return &Message{
		ticketID:   ticketID,
		senderID:   senderID,
		text:       text,
		attachment: attachment,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	senderID uint,
	text string,
	attachment *Attachment,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderID:   senderID,
		text:       text,
		attachment: attachment,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint                { return m.id }
func (m *Message) TicketID() uint          { return m.ticketID }
func (m *Message) SenderID() uint          { return m.senderID }
func (m *Message) Text() string            { return m.text }
func (m *Message) Attachment() *Attachment { return m.attachment }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
