package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

type FloorRepository interface {
	Create(ctx context.Context, floor *domain.Floor) (*domain.Floor, error)
	FindByID(ctx context.Context, id string) (*domain.Floor, error)
	FindAll(ctx context.Context) ([]domain.Floor, error)
	Update(ctx context.Context, floor *domain.Floor) error
	Delete(ctx context.Context, id string) error
}

type FloorInput struct {
	Number int
	Name   string
}

type FloorService interface {
	Create(ctx context.Context, in FloorInput) (*domain.Floor, error)
	Get(ctx context.Context, id string) (*domain.Floor, error)
	List(ctx context.Context) ([]domain.Floor, error)
	Update(ctx context.Context, id string, in FloorInput) (*domain.Floor, error)
	Delete(ctx context.Context, id string) error
}
