package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rainesports/site-api/internal/domain/tournament"
)

type TournamentService struct {
	tournaments tournament.Repository
}

func NewTournamentService(tournaments tournament.Repository) *TournamentService {
	return &TournamentService{tournaments: tournaments}
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournaments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return items, nil
}

func (s *TournamentService) ListUpcoming(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournaments.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming tournaments: %w", err)
	}

	return items, nil
}

func (s *TournamentService) ListResults(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournaments.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournament results: %w", err)
	}

	return items, nil
}

func (s *TournamentService) CreateTournament(ctx context.Context, in tournament.NewTournament) (tournament.Tournament, error) {
	if strings.TrimSpace(in.Opponent) == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}

	item, err := s.tournaments.Create(ctx, in)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return item, nil
}
