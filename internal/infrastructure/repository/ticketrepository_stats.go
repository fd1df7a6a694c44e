package repository

import (
	"context"
	"fmt"

	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/infrastructure/persistence/models"
	db "yordam/internal/shared/db"
)

func (r *TicketRepository) Count(ctx context.Context, filter ticket.TicketFilter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, filter ticket.TicketFilter) (map[vo.TicketStatus]int64, error) {
	rows, err := r.groupedCounts(ctx, filter, "status")
	if err != nil {
		return nil, err
	}

	out := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		out[vo.TicketStatus(row.Bucket)] = row.Count
	}
	return out, nil
}

func (r *TicketRepository) CountByPriority(ctx context.Context, filter ticket.TicketFilter) (map[vo.Priority]int64, error) {
	rows, err := r.groupedCounts(ctx, filter, "priority")
	if err != nil {
		return nil, err
	}

	out := make(map[vo.Priority]int64, len(rows))
	for _, row := range rows {
		out[vo.Priority(row.Bucket)] = row.Count
	}
	return out, nil
}

func (r *TicketRepository) CountBySystem(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error) {
	return r.groupedCountsUint(ctx, filter, "system_id")
}

func (r *TicketRepository) CountByRegion(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error) {
	return r.groupedCountsUint(ctx, filter, "region_id")
}

func (r *TicketRepository) CountByRating(ctx context.Context, filter ticket.TicketFilter) (map[int]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Bucket int
		Count  int64
	}
	err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("rating AS bucket, COUNT(*) AS count").
		Where("rating IS NOT NULL").
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by rating: %w", err)
	}

	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Bucket] = row.Count
	}
	return out, nil
}

func (r *TicketRepository) AverageRating(ctx context.Context, filter ticket.TicketFilter) (float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var avg *float64
	err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("AVG(rating)").
		Where("rating IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *TicketRepository) TechnicianPerformance(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TechnicianStats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		TechnicianID  uint
		ResolvedCount int64
		RatedCount    int64
		AvgRating     *float64
	}
	err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select("assignee_id AS technician_id, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS resolved_count, "+
			"COUNT(rating) AS rated_count, "+
			"AVG(rating) AS avg_rating", "resolved").
		Where("assignee_id IS NOT NULL").
		Group("assignee_id").
		Order("resolved_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute technician performance: %w", err)
	}

	stats := make([]ticket.TechnicianStats, len(rows))
	for i, row := range rows {
		stats[i] = ticket.TechnicianStats{
			TechnicianID:  row.TechnicianID,
			ResolvedCount: row.ResolvedCount,
			RatedCount:    row.RatedCount,
		}
		if row.AvgRating != nil {
			stats[i].AvgRating = *row.AvgRating
		}
	}
	return stats, nil
}

type groupedRow struct {
	Bucket string
	Count  int64
}

func (r *TicketRepository) groupedCounts(ctx context.Context, filter ticket.TicketFilter, column string) ([]groupedRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []groupedRow
	err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select(column + " AS bucket, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}
	return rows, nil
}

func (r *TicketRepository) groupedCountsUint(ctx context.Context, filter ticket.TicketFilter, column string) (map[uint]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Bucket uint
		Count  int64
	}
	err := applyTicketFilter(tx.Model(&models.TicketModel{}), filter).
		Select(column + " AS bucket, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.Bucket] = row.Count
	}
	return out, nil
}
