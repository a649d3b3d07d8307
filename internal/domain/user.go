package domain

import (
	"fmt"
	"time"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Role is the closed set of authorization roles. Stored as text but never
// treated as a free string: unknown values are rejected at the boundary.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole converts stored text into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Username     string
	Email        string
	FullName     string
	NationalID   string
	BirthDate    *string
	PasswordHash string
	Status       UserStatus
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLogin    *time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
