package region

import (
	"fmt"
	"time"
)

// Department is an organizational unit inside a region. It carries no
// permission semantics; tickets and users reference it for display only.
type Department struct {
	id        uint
	name      string
	regionID  uint
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name string, regionID uint) (*Department, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("department name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("department name exceeds maximum length of 150 characters")
	}
	if regionID == 0 {
		return nil, fmt.Errorf("region ID is required")
	}

	now := time.Now()
	return &Department{
		name:      name,
		regionID:  regionID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDepartment(
	id uint,
	name string,
	regionID uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Department, error) {
	if id == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("department name is required")
	}
	if regionID == 0 {
		return nil, fmt.Errorf("region ID is required")
	}

	return &Department{
		id:        id,
		name:      name,
		regionID:  regionID,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) RegionID() uint       { return d.regionID }
func (d *Department) IsActive() bool       { return d.isActive }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Department) Activate() {
	d.isActive = true
	d.updatedAt = time.Now()
}

func (d *Department) Deactivate() {
	d.isActive = false
	d.updatedAt = time.Now()
}
