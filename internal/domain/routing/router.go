package routing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"yordam/internal/domain/system"
	"yordam/internal/domain/ticket"
	"yordam/internal/domain/user"
)

var (
	// ErrNoResponsibility is returned when a technician acts on a system
	// they hold no technician responsibility for.
	ErrNoResponsibility = errors.New("no technician responsibility for this system")

	// ErrRegionMismatch is returned when a region-scoped technician acts
	// on a ticket from another region.
	ErrRegionMismatch = errors.New("ticket region is outside the technician's region")
)

// RouteResult is the routing decision for one new ticket: who it is
// auto-assigned to, if anyone, and who gets the new-ticket notification.
type RouteResult struct {
	AssigneeID *uint
	Recipients []uint
}

// Router resolves the assignee and notification recipients for new
// tickets, and hosts the technician unassigned-queue rules. It is a
// stateless function over the responsibility table.
type Router struct {
	responsibilities system.ResponsibilityRepository
}

func NewRouter(responsibilities system.ResponsibilityRepository) *Router {
	return &Router{responsibilities: responsibilities}
}

// RouteNewTicket picks the assignee for a (system, region) pair: the
// technician bound to the exact region wins, then the republic-wide
// default technician, else the ticket stays unassigned. Recipients are
// the republic-wide admins of the system, the admins bound to the
// ticket's region, and the resolved assignee, without duplicates.
func (r *Router) RouteNewTicket(ctx context.Context, systemID, regionID uint) (*RouteResult, error) {
	result := &RouteResult{}

	exact, err := r.responsibilities.FindTechnicianForRegion(ctx, systemID, regionID)
	if err != nil {
		return nil, fmt.Errorf("find technician for system %d region %d: %w", systemID, regionID, err)
	}
	if exact != nil {
		id := exact.UserID()
		result.AssigneeID = &id
	} else {
		fallback, err := r.responsibilities.FindDefaultTechnician(ctx, systemID)
		if err != nil {
			return nil, fmt.Errorf("find default technician for system %d: %w", systemID, err)
		}
		if fallback != nil {
			id := fallback.UserID()
			result.AssigneeID = &id
		}
	}

	admins, err := r.responsibilities.ListAdminsForSystem(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("list admins for system %d: %w", systemID, err)
	}

	seen := make(map[uint]struct{})
	for _, row := range admins {
		if !row.Scope().Covers(regionID) {
			continue
		}
		if _, ok := seen[row.UserID()]; ok {
			continue
		}
		seen[row.UserID()] = struct{}{}
		result.Recipients = append(result.Recipients, row.UserID())
	}
	if result.AssigneeID != nil {
		if _, ok := seen[*result.AssigneeID]; !ok {
			result.Recipients = append(result.Recipients, *result.AssigneeID)
		}
	}
	sort.Slice(result.Recipients, func(i, j int) bool {
		return result.Recipients[i] < result.Recipients[j]
	})

	return result, nil
}

// UnassignedQueueFor computes the queue slots a technician may browse
// and claim from. A republic-wide technician responsibility opens the
// whole region range for the system and wins over any region-bound row
// the technician also holds for it; a region-bound one alone is
// restricted to the technician's own home region. A region-bound
// responsibility held by a technician with no home region opens nothing.
func (r *Router) UnassignedQueueFor(ctx context.Context, tech *user.User) ([]ticket.QueueSlot, error) {
	rows, err := r.responsibilities.ListByUserAndRole(ctx, tech.ID(), system.SystemRoleTechnician)
	if err != nil {
		return nil, fmt.Errorf("list technician responsibilities for user %d: %w", tech.ID(), err)
	}

	republic := make(map[uint]struct{})
	for _, row := range rows {
		if row.Scope().IsRepublicWide() {
			republic[row.SystemID()] = struct{}{}
		}
	}

	slots := make([]ticket.QueueSlot, 0, len(rows))
	seen := make(map[uint]struct{})
	for _, row := range rows {
		if _, ok := seen[row.SystemID()]; ok {
			continue
		}
		if _, ok := republic[row.SystemID()]; ok {
			seen[row.SystemID()] = struct{}{}
			slots = append(slots, ticket.QueueSlot{SystemID: row.SystemID()})
			continue
		}
		if tech.RegionID() == nil {
			continue
		}
		regionID := *tech.RegionID()
		seen[row.SystemID()] = struct{}{}
		slots = append(slots, ticket.QueueSlot{SystemID: row.SystemID(), RegionID: &regionID})
	}
	return slots, nil
}

// CanTake checks the self-claim preconditions: the ticket is still
// unassigned, the technician holds a technician responsibility for its
// system, and a region-scoped technician's home region matches the
// ticket's region.
func (r *Router) CanTake(ctx context.Context, tech *user.User, t *ticket.Ticket) error {
	if t.IsAssigned() {
		return fmt.Errorf("%w: assignee %d", ticket.ErrAlreadyAssigned, *t.AssigneeID())
	}

	rows, err := r.responsibilities.ListByUserAndRole(ctx, tech.ID(), system.SystemRoleTechnician)
	if err != nil {
		return fmt.Errorf("list technician responsibilities for user %d: %w", tech.ID(), err)
	}

	var held *system.Responsibility
	for _, row := range rows {
		if row.SystemID() != t.SystemID() {
			continue
		}
		held = row
		if row.Scope().IsRepublicWide() {
			break
		}
	}
	if held == nil {
		return fmt.Errorf("%w: system %d", ErrNoResponsibility, t.SystemID())
	}
	if held.Scope().IsRepublicWide() {
		return nil
	}
	if tech.RegionID() == nil || *tech.RegionID() != t.RegionID() {
		return fmt.Errorf("%w: ticket region %d", ErrRegionMismatch, t.RegionID())
	}
	return nil
}
