package usecase

import (
	"errors"
	"testing"

	"github.com/rainesports/site-api/internal/domain/user"
	"github.com/rainesports/site-api/internal/infrastructure/repository/memory"
)

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	if _, err := svc.Register(t.Context(), user.NewUser{Username: "coach", Password: "longenough"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(t.Context(), user.NewUser{Username: "coach", Password: "another-one"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_Register_RequiresCredentials(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	if _, err := svc.Register(t.Context(), user.NewUser{Password: "longenough"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(t.Context(), user.NewUser{Username: "coach"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing password: expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_GetByUsername(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	created, err := svc.Register(t.Context(), user.NewUser{Username: "coach", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	found, err := svc.GetByUsername(t.Context(), "coach")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("lookup returned id %d, want %d", found.ID, created.ID)
	}

	if _, err := svc.GetByUsername(t.Context(), "stranger"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
