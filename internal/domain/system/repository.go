package system

import "context"

type SystemRepository interface {
	Save(ctx context.Context, system *System) error
	Update(ctx context.Context, system *System) error
	Delete(ctx context.Context, systemID uint) error
	GetByID(ctx context.Context, systemID uint) (*System, error)
	GetByName(ctx context.Context, name string) (*System, error)
	List(ctx context.Context, activeOnly bool) ([]*System, error)
}

// ResponsibilityRepository persists responsibility rows and answers the
// lookups the scope resolver and routing engine depend on.
type ResponsibilityRepository interface {
	Save(ctx context.Context, resp *Responsibility) error
	Delete(ctx context.Context, respID uint) error
	GetByID(ctx context.Context, respID uint) (*Responsibility, error)

	// Exists reports whether a row already occupies the
	// (system, user, region) slot; the republic variant counts as its
	// own slot.
	Exists(ctx context.Context, systemID, userID uint, scope RegionScope) (bool, error)

	ListBySystem(ctx context.Context, systemID uint) ([]*Responsibility, error)
	ListByUser(ctx context.Context, userID uint) ([]*Responsibility, error)
	ListByUserAndRole(ctx context.Context, userID uint, role SystemRole) ([]*Responsibility, error)

	// FindTechnicianForRegion returns the technician row bound to the
	// exact (system, region) pair, or nil when none exists.
	FindTechnicianForRegion(ctx context.Context, systemID, regionID uint) (*Responsibility, error)

	// FindDefaultTechnician returns the republic-wide default technician
	// row for the system, or nil when none exists.
	FindDefaultTechnician(ctx context.Context, systemID uint) (*Responsibility, error)

	// ListAdminsForSystem returns every admin row for the system,
	// republic-wide and region-bound alike.
	ListAdminsForSystem(ctx context.Context, systemID uint) ([]*Responsibility, error)

	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountBySystem(ctx context.Context, systemID uint) (int64, error)
}
