package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(m *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
	HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		Number:        t.Number(),
		Title:         t.Title(),
		Description:   t.Description(),
		SystemID:      t.SystemID(),
		RegionID:      t.RegionID(),
		CreatorID:     t.CreatorID(),
		AssigneeID:    t.AssigneeID(),
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		Rating:        t.Rating(),
		RatingComment: t.RatingComment(),
		Attachment:    attachmentToJSON(t.Attachment()),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if t.ResolvedAt() != nil {
		resolved := t.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	attachment, err := attachmentFromJSON(model.Attachment)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt).UTC()
		resolvedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.SystemID,
		model.RegionID,
		model.CreatorID,
		model.AssigneeID,
		priority,
		status,
		model.Rating,
		model.RatingComment,
		attachment,
		resolvedAt,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderID:   msg.SenderID(),
		Text:       msg.Text(),
		Attachment: attachmentToJSON(msg.Attachment()),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	attachment, err := attachmentFromJSON(model.Attachment)
	if err != nil {
		return nil, fmt.Errorf("ticket message %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		model.Text,
		attachment,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:         h.ID(),
		TicketID:   h.TicketID(),
		ChangedBy:  h.ChangedBy(),
		ActionType: h.Action().String(),
		OldValue:   h.OldValue(),
		NewValue:   h.NewValue(),
		Message:    h.Message(),
		CreatedAt:  h.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error) {
	action, err := vo.NewActionType(model.ActionType)
	if err != nil {
		return nil, fmt.Errorf("history entry %d: %w", model.ID, err)
	}

	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		model.ChangedBy,
		action,
		model.OldValue,
		model.NewValue,
		model.Message,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func attachmentToJSON(a *ticket.Attachment) datatypes.JSON {
	if a == nil {
		return nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func attachmentFromJSON(data datatypes.JSON) (*ticket.Attachment, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var a ticket.Attachment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return &a, nil
}
