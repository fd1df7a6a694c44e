package region

import "context"

type RegionRepository interface {
	Save(ctx context.Context, region *Region) error
	Update(ctx context.Context, region *Region) error
	Delete(ctx context.Context, regionID uint) error
	GetByID(ctx context.Context, regionID uint) (*Region, error)
	GetByCode(ctx context.Context, code string) (*Region, error)
	List(ctx context.Context, activeOnly bool) ([]*Region, error)
}

type DepartmentRepository interface {
	Save(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, departmentID uint) error
	GetByID(ctx context.Context, departmentID uint) (*Department, error)
	ListByRegion(ctx context.Context, regionID uint) ([]*Department, error)
	List(ctx context.Context, activeOnly bool) ([]*Department, error)
}
