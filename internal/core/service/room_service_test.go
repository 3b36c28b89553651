package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Conference Room Alpha", "conference-room-alpha"},
		{"The  Hive!", "the-hive"},
		{"Room #42 (3rd floor)", "room-42-3rd-floor"},
		{"---", ""},
		{"Café", "caf"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoomService_CreateAndRenameKeepSlugConsistent(t *testing.T) {
	repo := &stubRoomRepo{rooms: make(map[string]*domain.Room)}
	svc := NewRoomService(repo, zerolog.Nop())

	room, err := svc.Create(context.Background(), ports.RoomInput{
		Name:        "Corner Office",
		Description: "Sunny corner office",
		Price:       120,
		Type:        "office",
		FloorID:     "floor-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if room.Slug != "corner-office" {
		t.Fatalf("expected slug corner-office, got %q", room.Slug)
	}

	repo.rooms[room.ID] = room
	updated, err := svc.Update(context.Background(), room.ID, ports.RoomInput{
		Name:        "Executive Suite",
		Description: room.Description,
		Price:       room.Price,
		Type:        string(room.Type),
		FloorID:     room.FloorID,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Slug != "executive-suite" {
		t.Fatalf("expected slug re-derived on rename, got %q", updated.Slug)
	}
}
