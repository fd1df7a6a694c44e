package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	"yordam/internal/infrastructure/persistence/mappers"
	"yordam/internal/infrastructure/persistence/models"
	db "yordam/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"number":      true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"system_id":   true,
	"region_id":   true,
	"creator_id":  true,
	"assignee_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyTicketFilter(tx.Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) ListUnassigned(ctx context.Context, slots []ticket.QueueSlot, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyQueueSlots(tx.Model(&models.TicketModel{}), slots)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}

	query = query.Order("created_at ASC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list unassigned tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountUnassigned(ctx context.Context, slots []ticket.QueueSlot) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := applyQueueSlots(tx.Model(&models.TicketModel{}), slots).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("creator_id = ?", creatorID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by creator: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByAssignee(ctx context.Context, assigneeID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("assignee_id = ?", assigneeID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by assignee: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountBySystemID(ctx context.Context, systemID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("system_id = ?", systemID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by system: %w", err)
	}
	return count, nil
}

// applyTicketFilter translates the filter, including the actor's access
// scope, into WHERE clauses. List endpoints narrow silently; the access
// rules here must stay in lockstep with AccessContext.CanSeeTicket.
func applyTicketFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.SystemID != nil {
		query = query.Where("system_id = ?", *filter.SystemID)
	}
	if filter.RegionID != nil {
		query = query.Where("region_id = ?", *filter.RegionID)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned != nil && *filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	var createdFrom, createdTo time.Time
	if filter.CreatedFrom != nil {
		createdFrom = *filter.CreatedFrom
	}
	if filter.CreatedTo != nil {
		createdTo = *filter.CreatedTo
	}
	query = query.Scopes(db.CreatedBetween(createdFrom, createdTo))

	return applyAccessScope(query, filter.Access)
}

func applyAccessScope(query *gorm.DB, ac *access.AccessContext) *gorm.DB {
	if ac == nil {
		return query
	}

	switch {
	case ac.Role.IsSuperAdmin():
		return query
	case ac.Role.IsAdmin():
		if !ac.SystemScope.IsUnrestricted() {
			ids := ac.SystemScope.IDs()
			if len(ids) == 0 {
				return query.Where("1 = 0")
			}
			query = query.Where("system_id IN ?", ids)
		}
		if !ac.RegionScope.IsUnrestricted() {
			ids := ac.RegionScope.IDs()
			if len(ids) == 0 {
				return query.Where("1 = 0")
			}
			query = query.Where("region_id IN ?", ids)
		}
		return query
	case ac.Role.IsTechnician():
		return query.Where("assignee_id = ?", ac.UserID)
	default:
		return query.Where("creator_id = ?", ac.UserID)
	}
}

// applyQueueSlots narrows to the unassigned new tickets covered by the
// technician's queue slots. No slots means no backlog.
func applyQueueSlots(query *gorm.DB, slots []ticket.QueueSlot) *gorm.DB {
	query = query.Scopes(db.Unassigned())

	if len(slots) == 0 {
		return query.Where("1 = 0")
	}

	clauses := make([]string, 0, len(slots))
	args := make([]interface{}, 0, len(slots)*2)
	for _, slot := range slots {
		if slot.RegionID != nil {
			clauses = append(clauses, "(system_id = ? AND region_id = ?)")
			args = append(args, slot.SystemID, *slot.RegionID)
		} else {
			clauses = append(clauses, "system_id = ?")
			args = append(args, slot.SystemID)
		}
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
