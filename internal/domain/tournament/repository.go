package tournament

import "context"

type NewTournament struct {
	Opponent   string
	Date       string
	Type       string
	Result     *string
	IsUpcoming *bool
}

type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	ListUpcoming(ctx context.Context) ([]Tournament, error)
	ListResults(ctx context.Context) ([]Tournament, error)
	Create(ctx context.Context, in NewTournament) (Tournament, error)
}
