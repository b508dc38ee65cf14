package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rainesports/site-api/internal/domain/discord"
	"github.com/rainesports/site-api/internal/infrastructure/repository/memory"
)

type inviteFetcherMock struct {
	mock.Mock
}

func (m *inviteFetcherMock) FetchInvite(ctx context.Context, inviteURL string) (discord.InviteInfo, error) {
	args := m.Called(ctx, inviteURL)
	return args.Get(0).(discord.InviteInfo), args.Error(1)
}

func intPtr(v int) *int { return &v }

func TestDiscordService_UpdateStats_UsesFetchedCounts(t *testing.T) {
	repo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())
	fetcher := &inviteFetcherMock{}
	fetcher.On("FetchInvite", mock.Anything, "https://discord.gg/newcode").Return(discord.InviteInfo{
		TotalMembers:  512,
		OnlineMembers: 200,
		ServerName:    "Rain Esports",
		InviteURL:     "https://discord.gg/newcode",
	}, nil)

	svc := NewDiscordService(repo, fetcher, nil)
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	// Manual counts are supplied but the live lookup wins.
	stats, err := svc.UpdateStats(t.Context(), UpdateDiscordStatsInput{
		InviteURL:     "https://discord.gg/newcode",
		TotalMembers:  intPtr(1),
		OnlineMembers: intPtr(1),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if stats.TotalMembers != 512 || stats.OnlineMembers != 200 {
		t.Fatalf("got counts %d/%d, want fetched 512/200", stats.TotalMembers, stats.OnlineMembers)
	}
	if stats.InviteURL != "https://discord.gg/newcode" {
		t.Fatalf("invite url %q not persisted", stats.InviteURL)
	}
	if !stats.UpdatedAt.Equal(base) {
		t.Fatalf("UpdatedAt %v, want %v", stats.UpdatedAt, base)
	}
	fetcher.AssertExpectations(t)
}

func TestDiscordService_UpdateStats_FetchFailureFallsBackToManual(t *testing.T) {
	repo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())
	fetcher := &inviteFetcherMock{}
	fetcher.On("FetchInvite", mock.Anything, mock.Anything).
		Return(discord.InviteInfo{}, errors.Join(ErrDependencyUnavailable, errors.New("discord unreachable")))

	svc := NewDiscordService(repo, fetcher, nil)

	stats, err := svc.UpdateStats(t.Context(), UpdateDiscordStatsInput{
		InviteURL:     "https://discord.gg/newcode",
		TotalMembers:  intPtr(450),
		OnlineMembers: intPtr(140),
	})
	if err != nil {
		t.Fatalf("fallback update failed: %v", err)
	}

	if stats.TotalMembers != 450 || stats.OnlineMembers != 140 {
		t.Fatalf("got counts %d/%d, want manual 450/140", stats.TotalMembers, stats.OnlineMembers)
	}
}

func TestDiscordService_UpdateStats_FetchFailureWithoutManualCounts(t *testing.T) {
	repo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())
	fetcher := &inviteFetcherMock{}
	fetcher.On("FetchInvite", mock.Anything, mock.Anything).
		Return(discord.InviteInfo{}, errors.Join(ErrDependencyUnavailable, errors.New("discord unreachable")))

	svc := NewDiscordService(repo, fetcher, nil)

	_, err := svc.UpdateStats(t.Context(), UpdateDiscordStatsInput{
		InviteURL:    "https://discord.gg/newcode",
		TotalMembers: intPtr(450),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// A rejected update must not touch the stored record.
	stats, err := svc.GetStats(t.Context())
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if stats.TotalMembers != 440 || stats.InviteURL != "https://discord.gg/CXdR3GQVzR" {
		t.Fatalf("store changed after rejected update: %+v", stats)
	}
}

func TestDiscordService_UpdateStats_RejectsNegativeCounts(t *testing.T) {
	repo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())

	// No fetcher wired, so manual counts are the only path.
	svc := NewDiscordService(repo, nil, nil)

	_, err := svc.UpdateStats(t.Context(), UpdateDiscordStatsInput{
		InviteURL:     "https://discord.gg/newcode",
		TotalMembers:  intPtr(-1),
		OnlineMembers: intPtr(10),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDiscordService_UpdateStats_RequiresInviteURL(t *testing.T) {
	repo := memory.NewDiscordStatsRepository(memory.SeedDiscordStats())
	svc := NewDiscordService(repo, nil, nil)

	_, err := svc.UpdateStats(t.Context(), UpdateDiscordStatsInput{
		InviteURL:     "   ",
		TotalMembers:  intPtr(450),
		OnlineMembers: intPtr(140),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDiscordService_GetStats_EmptyStore(t *testing.T) {
	svc := NewDiscordService(memory.NewDiscordStatsRepository(nil), nil, nil)

	_, err := svc.GetStats(t.Context())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
