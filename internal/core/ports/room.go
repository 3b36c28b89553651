package ports

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// RoomRepository defines persistence for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindAll(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

// RoomInput is the full mutable state of a room; updates replace it wholesale.
type RoomInput struct {
	Name        string
	Description string
	Features    []string
	Photos      []string
	Thumbnail   string
	Price       float64
	Type        string
	FloorID     string
}

type RoomService interface {
	Create(ctx context.Context, in RoomInput) (*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, id string, in RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
