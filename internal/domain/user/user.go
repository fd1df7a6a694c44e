package user

import (
	"fmt"
	"strings"
	"time"

	"yordam/internal/shared/authorization"
)

// User is an account in the helpdesk. Role is mutually exclusive and
// drives every permission check; region and department are optional
// organizational links. Tickets copy the creator's region at creation.
type User struct {
	id           uint
	fullName     string
	email        string
	passwordHash string
	role         authorization.UserRole
	regionID     *uint
	departmentID *uint
	language     string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	fullName string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	regionID *uint,
	departmentID *uint,
) (*User, error) {
	if len(strings.TrimSpace(fullName)) == 0 {
		return nil, fmt.Errorf("full name is required")
	}
	if len(fullName) > 150 {
		return nil, fmt.Errorf("full name exceeds maximum length of 150 characters")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		regionID:     regionID,
		departmentID: departmentID,
		language:     "",
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	fullName string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	regionID *uint,
	departmentID *uint,
	language string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		regionID:     regionID,
		departmentID: departmentID,
		language:     language,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) FullName() string             { return u.fullName }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) RegionID() *uint              { return u.regionID }
func (u *User) DepartmentID() *uint          { return u.departmentID }
func (u *User) Language() string             { return u.language }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) IsAdmin() bool      { return u.role.IsAdmin() }
func (u *User) IsSuperAdmin() bool { return u.role.IsSuperAdmin() }
func (u *User) IsTechnician() bool { return u.role.IsTechnician() }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangeRole(newRole authorization.UserRole) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if u.role == newRole {
		return nil
	}
	u.role = newRole
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) SetLanguage(lang string) {
	u.language = lang
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}
