package ports

import (
	"context"
	"time"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// OrderRepository defines persistence for bookings.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

// Requester identifies who is performing an order operation; services use it
// to decide between own-records and all-records visibility.
type Requester struct {
	UserID string
	Role   string
}

type CreateOrderInput struct {
	RoomID      string
	EmployeeID  string
	StartDate   time.Time
	EndDate     time.Time
	VoucherCode string
}

type OrderService interface {
	Create(ctx context.Context, req Requester, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, req Requester, id string) (*domain.Order, error)
	List(ctx context.Context, req Requester) ([]domain.Order, error)
	Cancel(ctx context.Context, req Requester, id string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
