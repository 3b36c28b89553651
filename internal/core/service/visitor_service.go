package service

import (
	"context"
	"time"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// VisitorService registers guests against rooms.
type VisitorService struct {
	repo  ports.VisitorRepository
	rooms ports.RoomRepository
}

func NewVisitorService(repo ports.VisitorRepository, rooms ports.RoomRepository) *VisitorService {
	return &VisitorService{repo: repo, rooms: rooms}
}

func (s *VisitorService) Create(ctx context.Context, in ports.VisitorInput) (*domain.Visitor, error) {
	if _, err := s.rooms.FindByID(ctx, in.RoomID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Visitor{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Email:     in.Email,
		Purpose:   in.Purpose,
		RoomID:    in.RoomID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *VisitorService) Get(ctx context.Context, id string) (*domain.Visitor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VisitorService) List(ctx context.Context) ([]domain.Visitor, error) {
	return s.repo.FindAll(ctx)
}

func (s *VisitorService) Update(ctx context.Context, id string, in ports.VisitorInput) (*domain.Visitor, error) {
	visitor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.RoomID != visitor.RoomID {
		if _, err := s.rooms.FindByID(ctx, in.RoomID); err != nil {
			return nil, err
		}
		visitor.RoomID = in.RoomID
	}
	visitor.FirstName = in.FirstName
	visitor.LastName = in.LastName
	visitor.Address = in.Address
	visitor.Email = in.Email
	visitor.Purpose = in.Purpose
	if err := s.repo.Update(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}

func (s *VisitorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
