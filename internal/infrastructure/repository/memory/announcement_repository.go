package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rainesports/site-api/internal/domain/announcement"
)

type AnnouncementRepository struct {
	mu            sync.RWMutex
	announcements []announcement.Announcement
	nextID        int
	now           func() time.Time
}

func NewAnnouncementRepository() *AnnouncementRepository {
	return &AnnouncementRepository{
		nextID: 1,
		now:    time.Now,
	}
}

// SetNow overrides the clock. Test use only.
func (r *AnnouncementRepository) SetNow(now func() time.Time) {
	r.now = now
}

func (r *AnnouncementRepository) List(_ context.Context) ([]announcement.Announcement, error) {
	return r.listWhere(func(announcement.Announcement) bool { return true }), nil
}

func (r *AnnouncementRepository) ListActive(_ context.Context) ([]announcement.Announcement, error) {
	return r.listWhere(func(a announcement.Announcement) bool { return a.IsActive }), nil
}

func (r *AnnouncementRepository) GetByID(_ context.Context, id int) (announcement.Announcement, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.announcements {
		if a.ID == id {
			return a, true, nil
		}
	}

	return announcement.Announcement{}, false, nil
}

func (r *AnnouncementRepository) Create(_ context.Context, in announcement.NewAnnouncement) (announcement.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := announcement.TypeInfo
	if in.Type != nil {
		kind = *in.Type
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := r.now()
	a := announcement.Announcement{
		ID:        r.nextID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      kind,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.announcements = append(r.announcements, a)

	return a, nil
}

// Update merges the patch under the write lock so a partial update is never
// observable. UpdatedAt is stamped on every successful merge.
func (r *AnnouncementRepository) Update(_ context.Context, id int, patch announcement.Patch) (announcement.Announcement, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.announcements {
		if r.announcements[i].ID != id {
			continue
		}

		a := r.announcements[i]
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Message != nil {
			a.Message = *patch.Message
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.IsActive != nil {
			a.IsActive = *patch.IsActive
		}
		a.UpdatedAt = r.now()
		r.announcements[i] = a

		return a, true, nil
	}

	return announcement.Announcement{}, false, nil
}

func (r *AnnouncementRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.announcements {
		if r.announcements[i].ID == id {
			r.announcements = append(r.announcements[:i], r.announcements[i+1:]...)
			return nil
		}
	}

	return nil
}

func (r *AnnouncementRepository) listWhere(keep func(announcement.Announcement) bool) []announcement.Announcement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]announcement.Announcement, 0, len(r.announcements))
	for _, a := range r.announcements {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
