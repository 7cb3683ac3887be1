// Package entities contains core business entities.
package entities

import "time"

// Role enumerates the fixed user roles.
type Role string

const (
	// RoleUser is a regular member without administrative rights.
	RoleUser Role = "USER"
	// RoleAdmin may create events, teams and users.
	RoleAdmin Role = "ADMIN"
	// RoleSuperAdmin has the same rights as RoleAdmin plus role management.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsAdmin reports whether the role carries administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleSuperAdmin
}

// User is a domain representation of an account.
type User struct {
	ID           string
	Name         string
	Mobile       string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// AuthContext is the resolved caller identity attached to a request.
// It is the single canonical accessor for the caller id.
type AuthContext struct {
	UserID string
	Role   Role
}
