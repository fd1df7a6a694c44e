package access

import (
	"yordam/internal/shared/authorization"
)

// AccessContext is the immutable per-request capability set: who the
// actor is, what account role they carry, and which systems and regions
// they may act on. It is resolved once per request and passed explicitly
// into every core operation; no call site re-derives scope on its own.
type AccessContext struct {
	UserID      uint
	Role        authorization.UserRole
	SystemScope Scope
	RegionScope Scope
}

// TicketView is the slice of a ticket the visibility decision needs.
type TicketView struct {
	SystemID   uint
	RegionID   uint
	CreatorID  uint
	AssigneeID *uint
}

// CanSeeTicket decides single-ticket visibility.
//
//   - superadmin: always visible
//   - admin: the ticket's system must be in the system scope AND its
//     region in the region scope; both conditions are required
//   - technician: assignee equality (unassigned-queue visibility is a
//     separate routing-side rule)
//   - user: creator equality
func (ac *AccessContext) CanSeeTicket(t TicketView) bool {
	switch {
	case ac.Role.IsSuperAdmin():
		return true
	case ac.Role.IsAdmin():
		return ac.SystemScope.Contains(t.SystemID) && ac.RegionScope.Contains(t.RegionID)
	case ac.Role.IsTechnician():
		return t.AssigneeID != nil && *t.AssigneeID == ac.UserID
	default:
		return t.CreatorID == ac.UserID
	}
}

// IsParticipant reports whether the actor is the ticket's creator or its
// current assignee. Used for the chat-message gate.
func (ac *AccessContext) IsParticipant(t TicketView) bool {
	if t.CreatorID == ac.UserID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == ac.UserID
}
