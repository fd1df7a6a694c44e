// Package constants defines shared application constants.
package constants

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyAccessCtx = "access_context"
)

// Roles (mutually exclusive, not a bitmask)
const (
	RoleUser       = "user"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ReopenWindowDays is the number of days after resolution during which
// the ticket creator may reopen a resolved ticket.
const ReopenWindowDays = 3

// RatingResolveThreshold is the minimum rating that moves a
// pending_approval ticket to resolved; anything lower reopens it.
const RatingResolveThreshold = 4
