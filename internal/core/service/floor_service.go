package service

import (
	"context"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

type FloorService struct {
	repo ports.FloorRepository
}

func NewFloorService(repo ports.FloorRepository) *FloorService {
	return &FloorService{repo: repo}
}

func (s *FloorService) Create(ctx context.Context, in ports.FloorInput) (*domain.Floor, error) {
	return s.repo.Create(ctx, &domain.Floor{Number: in.Number, Name: in.Name})
}

func (s *FloorService) Get(ctx context.Context, id string) (*domain.Floor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FloorService) List(ctx context.Context) ([]domain.Floor, error) {
	return s.repo.FindAll(ctx)
}

func (s *FloorService) Update(ctx context.Context, id string, in ports.FloorInput) (*domain.Floor, error) {
	floor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	floor.Number = in.Number
	floor.Name = in.Name
	if err := s.repo.Update(ctx, floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *FloorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
