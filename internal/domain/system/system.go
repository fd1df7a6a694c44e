package system

import (
	"fmt"
	"time"
)

// System is a named internal software system that tickets are filed
// against.
type System struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSystem(name, description string) (*System, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("system name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("system name exceeds maximum length of 150 characters")
	}

	now := time.Now()
	return &System{
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSystem(
	id uint,
	name string,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*System, error) {
	if id == 0 {
		return nil, fmt.Errorf("system ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("system name is required")
	}

	return &System{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *System) ID() uint             { return s.id }
func (s *System) Name() string         { return s.name }
func (s *System) Description() string  { return s.description }
func (s *System) IsActive() bool       { return s.isActive }
func (s *System) CreatedAt() time.Time { return s.createdAt }
func (s *System) UpdatedAt() time.Time { return s.updatedAt }

func (s *System) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("system ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("system ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *System) Activate() {
	s.isActive = true
	s.updatedAt = time.Now()
}

func (s *System) Deactivate() {
	s.isActive = false
	s.updatedAt = time.Now()
}
