package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rainesports/site-api/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  []user.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

func (r *UserRepository) GetByID(_ context.Context, id int) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) Create(_ context.Context, in user.NewUser) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == in.Username {
			return user.User{}, fmt.Errorf("%w: %s", user.ErrUsernameTaken, in.Username)
		}
	}

	u := user.User{
		ID:       r.nextID,
		Username: in.Username,
		Password: in.Password,
	}
	r.nextID++
	r.users = append(r.users, u)

	return u, nil
}
