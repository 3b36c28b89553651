package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserService_Update_ActivatesAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice")

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{IsActive: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.IsActive {
		t.Fatalf("expected account to be activated")
	}
	if updated.Username != "alice" {
		t.Fatalf("untouched fields must survive: %+v", updated)
	}
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "bob")

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{
		FirstName: strPtr("Robert"),
		Role:      strPtr(domain.RoleOwner),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Robert" || updated.Role != domain.RoleOwner {
		t.Fatalf("unexpected patch result: %+v", updated)
	}
	if updated.IsActive {
		t.Fatalf("IsActive must not change when not provided")
	}
	if updated.UpdatedAt.IsZero() || time.Since(updated.UpdatedAt) > time.Minute {
		t.Fatalf("UpdatedAt not refreshed: %v", updated.UpdatedAt)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "carol")

	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: strPtr("superadmin")}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: strPtr("superadmin")}); errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("a bad role value is a validation failure, not a permission denial")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
