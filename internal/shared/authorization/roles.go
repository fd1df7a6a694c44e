package authorization

import "yordam/internal/shared/constants"

// UserRole represents a user's role within the helpdesk.
type UserRole string

const (
	RoleUser       UserRole = constants.RoleUser
	RoleTechnician UserRole = constants.RoleTechnician
	RoleAdmin      UserRole = constants.RoleAdmin
	RoleSuperAdmin UserRole = constants.RoleSuperAdmin
)

// IsValid checks whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleTechnician, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative rights.
// Superadmins are admins everywhere.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role is the republic-wide superadmin.
func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// IsTechnician reports whether the role is technician.
func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

// String returns the string form of the role.
func (r UserRole) String() string {
	return string(r)
}

// ParseUserRole parses a string into a UserRole, defaulting unknown
// values to the plain user role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if !role.IsValid() {
		return RoleUser
	}
	return role
}
