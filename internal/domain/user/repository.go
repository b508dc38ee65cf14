package user

import "context"

type NewUser struct {
	Username string
	Password string
}

type Repository interface {
	GetByID(ctx context.Context, id int) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	// Create enforces username uniqueness across the collection.
	Create(ctx context.Context, in NewUser) (User, error)
}
