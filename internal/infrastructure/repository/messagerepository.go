package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"yordam/internal/domain/ticket"
	"yordam/internal/infrastructure/persistence/mappers"
	"yordam/internal/infrastructure/persistence/models"
	db "yordam/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketMessageModel
	err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC, id ASC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}

	messages := make([]*ticket.Message, 0, len(modelList))
	for i := range modelList {
		m, err := r.mapper.MessageToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}

type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewHistoryRepository(database *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, h *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return h.SetID(model.ID)
}

func (r *HistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketHistoryModel
	err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC, id ASC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, 0, len(modelList))
	for i := range modelList {
		h, err := r.mapper.HistoryToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}

	return entries, nil
}

func (r *HistoryRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.TicketHistoryModel{}).Where("ticket_id = ?", ticketID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count history entries: %w", err)
	}
	return count, nil
}
