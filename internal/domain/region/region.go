package region

import (
	"fmt"
	"time"
)

// Region is an administrative territory. Its identity is immutable once
// created; users, departments, tickets and responsibility rows reference it.
type Region struct {
	id        uint
	name      string
	code      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRegion(name, code string) (*Region, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("region name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("region name exceeds maximum length of 100 characters")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("region code is required")
	}
	if len(code) > 20 {
		return nil, fmt.Errorf("region code exceeds maximum length of 20 characters")
	}

	now := time.Now()
	return &Region{
		name:      name,
		code:      code,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRegion(
	id uint,
	name string,
	code string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Region, error) {
	if id == 0 {
		return nil, fmt.Errorf("region ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("region name is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("region code is required")
	}

	return &Region{
		id:        id,
		name:      name,
		code:      code,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Region) ID() uint             { return r.id }
func (r *Region) Name() string         { return r.name }
func (r *Region) Code() string         { return r.code }
func (r *Region) IsActive() bool       { return r.isActive }
func (r *Region) CreatedAt() time.Time { return r.createdAt }
func (r *Region) UpdatedAt() time.Time { return r.updatedAt }

func (r *Region) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("region ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("region ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Region) Activate() {
	r.isActive = true
	r.updatedAt = time.Now()
}

func (r *Region) Deactivate() {
	r.isActive = false
	r.updatedAt = time.Now()
}
