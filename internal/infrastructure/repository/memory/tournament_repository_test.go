package memory

import (
	"testing"

	"github.com/rainesports/site-api/internal/domain/tournament"
)

func TestTournamentRepository_SeedPartition(t *testing.T) {
	repo := NewTournamentRepository(SeedTournaments())

	all, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	upcoming, err := repo.ListUpcoming(t.Context())
	if err != nil {
		t.Fatalf("list upcoming failed: %v", err)
	}
	results, err := repo.ListResults(t.Context())
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}

	if len(all) != 4 || len(upcoming) != 2 || len(results) != 2 {
		t.Fatalf("got %d/%d/%d tournaments, want 4/2/2", len(all), len(upcoming), len(results))
	}
	if len(upcoming)+len(results) != len(all) {
		t.Fatal("upcoming and results must partition the full list")
	}
	for _, item := range upcoming {
		if !item.IsUpcoming {
			t.Fatalf("tournament %d in upcoming list is not upcoming", item.ID)
		}
	}
	for _, item := range results {
		if item.Result == nil {
			t.Fatalf("seeded past tournament %d has no result", item.ID)
		}
	}
}

func TestTournamentRepository_CreateDefaultsToUpcoming(t *testing.T) {
	repo := NewTournamentRepository(nil)

	created, err := repo.Create(t.Context(), tournament.NewTournament{
		Opponent: "Storm Surge",
		Date:     "February 2, 2025",
		Type:     "Scrim Match",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.IsUpcoming {
		t.Fatal("tournament without an explicit flag should be upcoming")
	}
	if created.Result != nil {
		t.Fatal("new tournament should have no result")
	}
}

func TestTournamentRepository_ListCopiesResult(t *testing.T) {
	repo := NewTournamentRepository(SeedTournaments())

	results, err := repo.ListResults(t.Context())
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}
	if len(results) == 0 || results[0].Result == nil {
		t.Fatalf("expected seeded results, got %+v", results)
	}

	*results[0].Result = "tampered"

	fresh, err := repo.ListResults(t.Context())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if *fresh[0].Result == "tampered" {
		t.Fatal("mutating a returned result leaked into the store")
	}
}
