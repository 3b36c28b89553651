package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// RoomService manages bookable rooms. The slug is re-derived from the name on
// every write so renames stay consistent.
type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

func (s *RoomService) Create(ctx context.Context, in ports.RoomInput) (*domain.Room, error) {
	now := time.Now().UTC()
	room := &domain.Room{
		Name:        in.Name,
		Slug:        slugify(in.Name),
		Description: in.Description,
		Features:    in.Features,
		Photos:      in.Photos,
		Thumbnail:   in.Thumbnail,
		Price:       in.Price,
		Type:        domain.RoomType(in.Type),
		FloorID:     in.FloorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("room_id", created.ID).Str("slug", created.Slug).Msg("room created")
	return created, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) Update(ctx context.Context, id string, in ports.RoomInput) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = in.Name
	room.Slug = slugify(in.Name)
	room.Description = in.Description
	room.Features = in.Features
	room.Photos = in.Photos
	room.Thumbnail = in.Thumbnail
	room.Price = in.Price
	room.Type = domain.RoomType(in.Type)
	room.FloorID = in.FloorID
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// slugify lowercases the name and collapses anything non-alphanumeric into
// single hyphens ("Conference Room Alpha" → "conference-room-alpha").
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
