package ticket

import (
	"fmt"
	"time"

	vo "yordam/internal/domain/ticket/valueobjects"
)

// HistoryEntry is one row of a ticket's audit trail. One entry is
// written for every state-changing operation; entries are never mutated
// or deleted. changedBy is nil for system-originated entries.
type HistoryEntry struct {
	id        uint
	ticketID  uint
	changedBy *uint
	action    vo.ActionType
	oldValue  string
	newValue  string
	message   string
	createdAt time.Time
}

func NewHistoryEntry(
	ticketID uint,
	changedBy *uint,
	action vo.ActionType,
	oldValue, newValue string,
	message string,
) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action type: %s", action)
	}

	return &HistoryEntry{
		ticketID:  ticketID,
		changedBy: changedBy,
		action:    action,
		oldValue:  oldValue,
		newValue:  newValue,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	changedBy *uint,
	action vo.ActionType,
	oldValue, newValue string,
	message string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action type: %s", action)
	}

	return &HistoryEntry{
		id:        id,
		ticketID:  ticketID,
		changedBy: changedBy,
		action:    action,
		oldValue:  oldValue,
		newValue:  newValue,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint              { return h.id }
func (h *HistoryEntry) TicketID() uint        { return h.ticketID }
func (h *HistoryEntry) ChangedBy() *uint      { return h.changedBy }
func (h *HistoryEntry) Action() vo.ActionType { return h.action }
func (h *HistoryEntry) OldValue() string      { return h.oldValue }
func (h *HistoryEntry) NewValue() string      { return h.newValue }
func (h *HistoryEntry) Message() string       { return h.message }
func (h *HistoryEntry) CreatedAt() time.Time  { return h.createdAt }

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
