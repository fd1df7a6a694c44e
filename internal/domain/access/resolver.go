package access

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
)

// Resolver computes an AccessContext from a user's account role and
// their admin responsibility rows.
type Resolver struct {
	responsibilities system.ResponsibilityRepository
}

func NewResolver(responsibilities system.ResponsibilityRepository) *Resolver {
	return &Resolver{responsibilities: responsibilities}
}

// ResolveAccess builds the capability set for one request.
//
// Superadmins get the unrestricted sentinel for both scopes. Admins get
// the systems named by their admin responsibility rows; their region
// scope is republic-wide as soon as any of those rows is republic-wide,
// otherwise the distinct set of bound regions. An admin with zero rows
// ends up with empty scopes and sees nothing. Plain users and
// technicians carry empty scopes; their visibility is decided by
// creator/assignee equality, not by scope sets.
func (r *Resolver) ResolveAccess(ctx context.Context, u *user.User) (*AccessContext, error) {
	ac := &AccessContext{
		UserID:      u.ID(),
		Role:        u.Role(),
		SystemScope: ScopeOf(),
		RegionScope: ScopeOf(),
	}

	if u.IsSuperAdmin() {
		ac.SystemScope = UnrestrictedScope()
		ac.RegionScope = UnrestrictedScope()
		return ac, nil
	}

	if !u.IsAdmin() {
		return ac, nil
	}

	rows, err := r.responsibilities.ListByUserAndRole(ctx, u.ID(), system.SystemRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admin responsibilities for user %d: %w", u.ID(), err)
	}

	systemIDs := make([]uint, 0, len(rows))
	regionIDs := make([]uint, 0, len(rows))
	republic := false
	for _, row := range rows {
		systemIDs = append(systemIDs, row.SystemID())
		if row.Scope().IsRepublicWide() {
			republic = true
			continue
		}
		if id, ok := row.Scope().RegionID(); ok {
			regionIDs = append(regionIDs, id)
		}
	}

	ac.SystemScope = ScopeOf(systemIDs...)
	if republic {
		ac.RegionScope = RepublicScope()
	} else {
		ac.RegionScope = ScopeOf(regionIDs...)
	}
	return ac, nil
}
