package domain

import (
	"errors"
	"time"
)

// Role is the capability tag attached to a user. There is no hierarchy —
// every protected operation declares an explicit allow-list of roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// AnyRole is the sentinel allow-list for operations that predate roles and
// accept every authenticated user.
var AnyRole = []Role{RoleAdmin, RoleStudent, RoleAlumni}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleAlumni:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("account already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")
)

// User models a registered identity: the login keys (email, mobile), the
// bcrypt password hash, the role consumed by the access-control gate, and the
// single cached bearer token for the identity.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Token        string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
