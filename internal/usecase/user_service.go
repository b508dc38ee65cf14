package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rainesports/site-api/internal/domain/user"
)

// UserService backs the registration path. The public site never calls it;
// it exists for tooling and future per-user features.
type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, in user.NewUser) (user.User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if in.Password == "" {
		return user.User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	created, err := s.users.Create(ctx, in)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, exists, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, username)
	}

	return u, nil
}
