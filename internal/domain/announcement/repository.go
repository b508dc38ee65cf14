package announcement

import "context"

type NewAnnouncement struct {
	Title    string
	Message  string
	Type     *string
	IsActive *bool
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title    *string
	Message  *string
	Type     *string
	IsActive *bool
}

type Repository interface {
	List(ctx context.Context) ([]Announcement, error)
	ListActive(ctx context.Context) ([]Announcement, error)
	GetByID(ctx context.Context, id int) (Announcement, bool, error)
	Create(ctx context.Context, in NewAnnouncement) (Announcement, error)
	Update(ctx context.Context, id int, patch Patch) (Announcement, bool, error)
	// Delete is idempotent: deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
