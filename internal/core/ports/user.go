package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// UpdateUserInput holds the account fields an admin may change. Nil pointers
// leave the stored value untouched. Passwords are deliberately not updatable
// through this path.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Address   *string
	Role      *string
	IsActive  *bool
}

// UserService covers account administration beyond the auth flow.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
