package memory

import (
	"context"
	"sync"

	"github.com/rainesports/site-api/internal/domain/discord"
)

// DiscordStatsRepository holds the single live stats record, if any.
type DiscordStatsRepository struct {
	mu    sync.RWMutex
	stats *discord.Stats
}

func NewDiscordStatsRepository(seed *discord.Stats) *DiscordStatsRepository {
	r := &DiscordStatsRepository{}
	if seed != nil {
		s := *seed
		s.ID = 1
		r.stats = &s
	}
	return r
}

func (r *DiscordStatsRepository) Get(_ context.Context) (discord.Stats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stats == nil {
		return discord.Stats{}, false, nil
	}

	return *r.stats, true, nil
}

func (r *DiscordStatsRepository) Replace(_ context.Context, stats discord.Stats) (discord.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats.ID = 1
	r.stats = &stats

	return stats, nil
}
