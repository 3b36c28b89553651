package domain

import (
	"errors"
	"time"
)

// Roles a user account can hold. Owners manage the space, admins manage the
// platform, everyone else books rooms.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account not activated")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
)

// User models a registered account. PasswordHash never reaches a JSON
// response: the field is excluded here and the transport layer additionally
// serializes users through its own response types.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Address      string    `json:"address"`
	Birthdate    time.Time `json:"birthdate,omitempty"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleUser
}
