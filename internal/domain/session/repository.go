package session

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) (Session, error)
	// Get reports only live sessions. An expired session observed here is
	// evicted before the miss is reported.
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
}
