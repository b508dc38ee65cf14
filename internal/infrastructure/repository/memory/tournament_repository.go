package memory

import (
	"context"
	"sync"

	"github.com/rainesports/site-api/internal/domain/tournament"
)

type TournamentRepository struct {
	mu          sync.RWMutex
	tournaments []tournament.Tournament
	nextID      int
}

func NewTournamentRepository(seed []tournament.NewTournament) *TournamentRepository {
	r := &TournamentRepository{nextID: 1}
	for _, in := range seed {
		_, _ = r.Create(context.Background(), in)
	}
	return r
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		t.Result = copyStringPtr(t.Result)
		out = append(out, t)
	}

	return out, nil
}

func (r *TournamentRepository) ListUpcoming(ctx context.Context) ([]tournament.Tournament, error) {
	return r.listWhere(func(t tournament.Tournament) bool { return t.IsUpcoming }), nil
}

func (r *TournamentRepository) ListResults(ctx context.Context) ([]tournament.Tournament, error) {
	return r.listWhere(func(t tournament.Tournament) bool { return !t.IsUpcoming }), nil
}

func (r *TournamentRepository) Create(_ context.Context, in tournament.NewTournament) (tournament.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	isUpcoming := true
	if in.IsUpcoming != nil {
		isUpcoming = *in.IsUpcoming
	}

	t := tournament.Tournament{
		ID:         r.nextID,
		Opponent:   in.Opponent,
		Date:       in.Date,
		Type:       in.Type,
		Result:     copyStringPtr(in.Result),
		IsUpcoming: isUpcoming,
	}
	r.nextID++
	r.tournaments = append(r.tournaments, t)

	return t, nil
}

func (r *TournamentRepository) listWhere(keep func(tournament.Tournament) bool) []tournament.Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		if keep(t) {
			t.Result = copyStringPtr(t.Result)
			out = append(out, t)
		}
	}

	return out
}

func copyStringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
