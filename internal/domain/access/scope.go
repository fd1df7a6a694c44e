package access

import (
	"fmt"
	"sort"
	"strings"
)

type scopeKind int

const (
	scopeSet scopeKind = iota
	scopeUnrestricted
	scopeRepublic
)

// Scope is the set of system or region IDs an actor may act on. Two
// variants are unrestricted: the superadmin sentinel and the republic
// variant an admin earns through a republic-wide responsibility row.
// Both pass every Contains check; they are kept distinct so "no
// filtering because superadmin" and "no region filtering because
// republic admin" stay tellable apart in logs and tests. An empty set
// scope means no access, never "all".
type Scope struct {
	kind scopeKind
	ids  map[uint]struct{}
}

// UnrestrictedScope is the superadmin sentinel: every ID is in scope.
func UnrestrictedScope() Scope {
	return Scope{kind: scopeUnrestricted}
}

// RepublicScope is the empty-restriction variant for republic admins:
// every ID is in scope, earned through a republic-wide responsibility.
func RepublicScope() Scope {
	return Scope{kind: scopeRepublic}
}

// ScopeOf builds a restricted scope from the given IDs. Duplicates are
// collapsed. ScopeOf() with no IDs is the locked-out empty scope.
func ScopeOf(ids ...uint) Scope {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Scope{kind: scopeSet, ids: set}
}

// IsUnrestricted reports whether the scope passes every ID.
func (s Scope) IsUnrestricted() bool {
	return s.kind == scopeUnrestricted || s.kind == scopeRepublic
}

// IsRepublic reports whether the scope is the republic-admin variant.
func (s Scope) IsRepublic() bool {
	return s.kind == scopeRepublic
}

// IsEmpty reports whether the scope admits nothing.
func (s Scope) IsEmpty() bool {
	return s.kind == scopeSet && len(s.ids) == 0
}

// Contains reports whether the given ID is in scope.
func (s Scope) Contains(id uint) bool {
	if s.IsUnrestricted() {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// IDs returns the restricted ID set in ascending order, or nil for the
// unrestricted variants.
func (s Scope) IDs() []uint {
	if s.IsUnrestricted() {
		return nil
	}
	ids := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s Scope) String() string {
	switch s.kind {
	case scopeUnrestricted:
		return "unrestricted"
	case scopeRepublic:
		return "republic"
	default:
		parts := make([]string, 0, len(s.ids))
		for _, id := range s.IDs() {
			parts = append(parts, fmt.Sprintf("%d", id))
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
}
