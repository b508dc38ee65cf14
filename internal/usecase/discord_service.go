package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rainesports/site-api/internal/domain/discord"
	"github.com/rainesports/site-api/internal/platform/logging"
)

// InviteFetcher retrieves live member counts for a Discord invite.
type InviteFetcher interface {
	FetchInvite(ctx context.Context, inviteURL string) (discord.InviteInfo, error)
}

type UpdateDiscordStatsInput struct {
	InviteURL     string
	TotalMembers  *int
	OnlineMembers *int
}

type DiscordService struct {
	stats   discord.Repository
	fetcher InviteFetcher
	logger  *logging.Logger
	now     func() time.Time
}

func NewDiscordService(stats discord.Repository, fetcher InviteFetcher, logger *logging.Logger) *DiscordService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &DiscordService{
		stats:   stats,
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *DiscordService) GetStats(ctx context.Context) (discord.Stats, error) {
	stats, exists, err := s.stats.Get(ctx)
	if err != nil {
		return discord.Stats{}, fmt.Errorf("get discord stats: %w", err)
	}
	if !exists {
		return discord.Stats{}, fmt.Errorf("%w: discord stats", ErrNotFound)
	}

	return stats, nil
}

// UpdateStats refreshes the singleton. When an invite url is supplied the
// live counts are fetched from Discord; a lookup failure degrades to the
// caller-supplied numbers instead of failing the write.
func (s *DiscordService) UpdateStats(ctx context.Context, in UpdateDiscordStatsInput) (discord.Stats, error) {
	inviteURL := strings.TrimSpace(in.InviteURL)
	if inviteURL == "" {
		return discord.Stats{}, fmt.Errorf("%w: invite url is required", ErrInvalidInput)
	}

	if s.fetcher != nil {
		info, err := s.fetcher.FetchInvite(ctx, inviteURL)
		if err == nil {
			return s.replace(ctx, discord.Stats{
				TotalMembers:  info.TotalMembers,
				OnlineMembers: info.OnlineMembers,
				InviteURL:     inviteURL,
			})
		}
		if !errors.Is(err, ErrDependencyUnavailable) {
			return discord.Stats{}, fmt.Errorf("fetch discord invite: %w", err)
		}
		s.logger.WarnContext(ctx, "discord invite lookup failed, using manual counts",
			"invite_url", inviteURL,
			"error", err,
		)
	}

	if in.TotalMembers == nil || in.OnlineMembers == nil {
		return discord.Stats{}, fmt.Errorf("%w: total and online member counts are required", ErrInvalidInput)
	}
	if *in.TotalMembers < 0 || *in.OnlineMembers < 0 {
		return discord.Stats{}, fmt.Errorf("%w: member counts cannot be negative", ErrInvalidInput)
	}

	return s.replace(ctx, discord.Stats{
		TotalMembers:  *in.TotalMembers,
		OnlineMembers: *in.OnlineMembers,
		InviteURL:     inviteURL,
	})
}

func (s *DiscordService) replace(ctx context.Context, stats discord.Stats) (discord.Stats, error) {
	stats.UpdatedAt = s.now()
	stored, err := s.stats.Replace(ctx, stats)
	if err != nil {
		return discord.Stats{}, fmt.Errorf("replace discord stats: %w", err)
	}

	return stored, nil
}
