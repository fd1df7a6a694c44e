package system

import (
	"fmt"
	"time"
)

// SystemRole is a user's role inside one system, carried on a
// responsibility row. Distinct from the account-wide role: a user whose
// account role is technician may still hold an admin responsibility row
// only if their account role permits it, which the application layer
// checks.
type SystemRole string

const (
	SystemRoleAdmin      SystemRole = "admin"
	SystemRoleTechnician SystemRole = "technician"
)

func (r SystemRole) IsValid() bool {
	return r == SystemRoleAdmin || r == SystemRoleTechnician
}

func (r SystemRole) String() string {
	return string(r)
}

func NewSystemRole(s string) (SystemRole, error) {
	r := SystemRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid system role: %s", s)
	}
	return r, nil
}

// Responsibility links a user to a system with a role and a territorial
// scope. Responsibility rows drive both admin visibility scoping and the
// new-ticket routing algorithm.
//
// Invariants:
//   - at most one row per (system, user, region) triple, the republic
//     variant counting as its own region slot (enforced by the repository)
//   - a default row must be republic-wide
type Responsibility struct {
	id        uint
	systemID  uint
	userID    uint
	scope     RegionScope
	role      SystemRole
	isDefault bool
	createdAt time.Time
}

func NewResponsibility(
	systemID uint,
	userID uint,
	scope RegionScope,
	role SystemRole,
	isDefault bool,
) (*Responsibility, error) {
	if systemID == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid system role: %s", role)
	}
	if isDefault && !scope.IsRepublicWide() {
		return nil, fmt.Errorf("default responsibility must be republic-wide")
	}

	return &Responsibility{
		systemID:  systemID,
		userID:    userID,
		scope:     scope,
		role:      role,
		isDefault: isDefault,
		createdAt: time.Now(),
	}, nil
}

func ReconstructResponsibility(
	id uint,
	systemID uint,
	userID uint,
	scope RegionScope,
	role SystemRole,
	isDefault bool,
	createdAt time.Time,
) (*Responsibility, error) {
	if id == 0 {
		return nil, fmt.Errorf("responsibility ID cannot be zero")
	}
	if systemID == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid system role: %s", role)
	}

	return &Responsibility{
		id:        id,
		systemID:  systemID,
		userID:    userID,
		scope:     scope,
		role:      role,
		isDefault: isDefault,
		createdAt: createdAt,
	}, nil
}

func (r *Responsibility) ID() uint             { return r.id }
func (r *Responsibility) SystemID() uint       { return r.systemID }
func (r *Responsibility) UserID() uint         { return r.userID }
func (r *Responsibility) Scope() RegionScope   { return r.scope }
func (r *Responsibility) Role() SystemRole     { return r.role }
func (r *Responsibility) IsDefault() bool      { return r.isDefault }
func (r *Responsibility) CreatedAt() time.Time { return r.createdAt }

func (r *Responsibility) IsAdmin() bool      { return r.role == SystemRoleAdmin }
func (r *Responsibility) IsTechnician() bool { return r.role == SystemRoleTechnician }

func (r *Responsibility) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("responsibility ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("responsibility ID cannot be zero")
	}
	r.id = id
	return nil
}
