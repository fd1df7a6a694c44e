package ticket

import (
	"context"
	"time"

	"yordam/internal/domain/access"
	vo "yordam/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows list and aggregate queries. When Access is set
// the repository applies the visibility filter before pagination and
// aggregation: unrestricted scopes apply nothing, restricted scopes
// become system/region IN-clauses, technician and user roles become
// assignee/creator equality.
type TicketFilter struct {
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	SystemID    *uint
	RegionID    *uint
	CreatorID   *uint
	AssigneeID  *uint
	Unassigned  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Access      *access.AccessContext
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// QueueSlot names one (system, region) pair of the technician
// unassigned queue. A nil RegionID covers every region, the shape a
// republic-default technician responsibility produces.
type QueueSlot struct {
	SystemID uint
	RegionID *uint
}

// QuickStats is the scope-dependent dashboard aggregate. Every count
// except Unassigned is computed under the visibility filter; Unassigned
// is computed under the responsibility-based queue filter because
// unassigned tickets belong to no admin yet.
type QuickStats struct {
	Total      int64
	Unassigned int64
	InProgress int64
	Resolved   int64
	AvgRating  float64
}

// TechnicianStats is one row of the technician performance report.
type TechnicianStats struct {
	TechnicianID  uint
	ResolvedCount int64
	RatedCount    int64
	AvgRating     float64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)

	// ListUnassigned returns unassigned new tickets matching any of the
	// queue slots.
	ListUnassigned(ctx context.Context, slots []QueueSlot, page, pageSize int) ([]*Ticket, int64, error)
	CountUnassigned(ctx context.Context, slots []QueueSlot) (int64, error)

	Count(ctx context.Context, filter TicketFilter) (int64, error)
	CountByStatus(ctx context.Context, filter TicketFilter) (map[vo.TicketStatus]int64, error)
	CountBySystem(ctx context.Context, filter TicketFilter) (map[uint]int64, error)
	CountByRegion(ctx context.Context, filter TicketFilter) (map[uint]int64, error)
	CountByPriority(ctx context.Context, filter TicketFilter) (map[vo.Priority]int64, error)
	CountByRating(ctx context.Context, filter TicketFilter) (map[int]int64, error)
	AverageRating(ctx context.Context, filter TicketFilter) (float64, error)
	TechnicianPerformance(ctx context.Context, filter TicketFilter) ([]TechnicianStats, error)

	CountByCreator(ctx context.Context, creatorID uint) (int64, error)
	CountByAssignee(ctx context.Context, assigneeID uint) (int64, error)
	CountBySystemID(ctx context.Context, systemID uint) (int64, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Message, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, h *HistoryEntry) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
	CountByTicket(ctx context.Context, ticketID uint) (int64, error)
}
