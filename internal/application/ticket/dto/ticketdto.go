package dto

import (
	"time"

	"yordam/internal/domain/ticket"
)

type AttachmentDTO struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
}

type TicketDTO struct {
	ID            uint           `json:"id"`
	Number        string         `json:"number"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	SystemID      uint           `json:"system_id"`
	RegionID      uint           `json:"region_id"`
	CreatorID     uint           `json:"creator_id"`
	AssigneeID    *uint          `json:"assignee_id,omitempty"`
	Priority      string         `json:"priority"`
	Status        string         `json:"status"`
	Rating        *int           `json:"rating,omitempty"`
	RatingComment string         `json:"rating_comment,omitempty"`
	Attachment    *AttachmentDTO `json:"attachment,omitempty"`
	ResolvedAt    *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type MessageDTO struct {
	ID         uint           `json:"id"`
	TicketID   uint           `json:"ticket_id"`
	SenderID   uint           `json:"sender_id"`
	Text       string         `json:"text"`
	Attachment *AttachmentDTO `json:"attachment,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type HistoryEntryDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	ChangedBy *uint     `json:"changed_by,omitempty"`
	Action    string    `json:"action"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketDetailDTO struct {
	Ticket   *TicketDTO         `json:"ticket"`
	Messages []*MessageDTO      `json:"messages"`
	History  []*HistoryEntryDTO `json:"history"`
}

type QuickStatsDTO struct {
	Total      int64    `json:"total"`
	InProgress int64    `json:"in_progress"`
	Resolved   int64    `json:"resolved"`
	Unassigned int64    `json:"unassigned"`
	AvgRating  *float64 `json:"avg_rating,omitempty"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:            t.ID(),
		Number:        t.Number(),
		Title:         t.Title(),
		Description:   t.Description(),
		SystemID:      t.SystemID(),
		RegionID:      t.RegionID(),
		CreatorID:     t.CreatorID(),
		AssigneeID:    t.AssigneeID(),
		Priority:      string(t.Priority()),
		Status:        string(t.Status()),
		Rating:        t.Rating(),
		RatingComment: t.RatingComment(),
		Attachment:    fromAttachment(t.Attachment()),
		ResolvedAt:    t.ResolvedAt(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		out[i] = FromTicket(t)
	}
	return out
}

func FromMessage(m *ticket.Message) *MessageDTO {
	return &MessageDTO{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		SenderID:   m.SenderID(),
		Text:       m.Text(),
		Attachment: fromAttachment(m.Attachment()),
		CreatedAt:  m.CreatedAt(),
	}
}

func FromMessages(messages []*ticket.Message) []*MessageDTO {
	out := make([]*MessageDTO, len(messages))
	for i, m := range messages {
		out[i] = FromMessage(m)
	}
	return out
}

func FromHistoryEntry(h *ticket.HistoryEntry) *HistoryEntryDTO {
	return &HistoryEntryDTO{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		ChangedBy: h.ChangedBy(),
		Action:    string(h.Action()),
		OldValue:  h.OldValue(),
		NewValue:  h.NewValue(),
		Message:   h.Message(),
		CreatedAt: h.CreatedAt(),
	}
}

func FromHistory(entries []*ticket.HistoryEntry) []*HistoryEntryDTO {
	out := make([]*HistoryEntryDTO, len(entries))
	for i, h := range entries {
		out[i] = FromHistoryEntry(h)
	}
	return out
}

func fromAttachment(a *ticket.Attachment) *AttachmentDTO {
	if a == nil {
		return nil
	}
	return &AttachmentDTO{
		FileName: a.FileName,
		FilePath: a.FilePath,
		FileSize: a.FileSize,
	}
}
