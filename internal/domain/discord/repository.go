package discord

import "context"

type Repository interface {
	Get(ctx context.Context) (Stats, bool, error)
	// Replace swaps the singleton wholesale. The stored id is always 1.
	Replace(ctx context.Context, stats Stats) (Stats, error)
}
