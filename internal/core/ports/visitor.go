package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

type VisitorRepository interface {
	Create(ctx context.Context, visitor *domain.Visitor) (*domain.Visitor, error)
	FindByID(ctx context.Context, id string) (*domain.Visitor, error)
	FindAll(ctx context.Context) ([]domain.Visitor, error)
	Update(ctx context.Context, visitor *domain.Visitor) error
	Delete(ctx context.Context, id string) error
}

type VisitorInput struct {
	FirstName string
	LastName  string
	Address   string
	Email     string
	Purpose   string
	RoomID    string
}

type VisitorService interface {
	Create(ctx context.Context, in VisitorInput) (*domain.Visitor, error)
	Get(ctx context.Context, id string) (*domain.Visitor, error)
	List(ctx context.Context) ([]domain.Visitor, error)
	Update(ctx context.Context, id string, in VisitorInput) (*domain.Visitor, error)
	Delete(ctx context.Context, id string) error
}
