package ports

import (
	"context"
	"time"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// SignupInput carries the profile fields collected at registration.
type SignupInput struct {
	FirstName       string
	LastName        string
	Address         string
	Birthdate       time.Time
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	// Unknown usernames and wrong passwords are indistinguishable to callers:
	// both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenVerifier resolves a session token back to the user it was issued to.
// Used by the request middleware.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}
