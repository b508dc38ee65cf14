package memory

import (
	"context"
	"sync"

	"github.com/rainesports/site-api/internal/domain/roster"
)

// MemberRepository holds the roster in insertion order. Ids are allocated
// from a per-collection counter that only moves forward.
type MemberRepository struct {
	mu      sync.RWMutex
	members []roster.Member
	nextID  int
}

func NewMemberRepository(seed []roster.NewMember) *MemberRepository {
	r := &MemberRepository{nextID: 1}
	for _, in := range seed {
		_, _ = r.Create(context.Background(), in)
	}
	return r
}

func (r *MemberRepository) ListActive(_ context.Context) ([]roster.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Member, 0, len(r.members))
	for _, m := range r.members {
		if m.IsActive {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *MemberRepository) GetByID(_ context.Context, id int) (roster.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.ID == id {
			return m, true, nil
		}
	}

	return roster.Member{}, false, nil
}

func (r *MemberRepository) Create(_ context.Context, in roster.NewMember) (roster.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	m := roster.Member{
		ID:          r.nextID,
		Name:        in.Name,
		Role:        in.Role,
		Rank:        in.Rank,
		KDA:         in.KDA,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		IsActive:    isActive,
	}
	r.nextID++
	r.members = append(r.members, m)

	return m, nil
}
