package roster

import "context"

// NewMember carries the caller-supplied fields for a roster create.
// IsActive is a pointer so an omitted value can default to true.
type NewMember struct {
	Name        string
	Role        string
	Rank        string
	KDA         string
	ImageURL    string
	Description string
	IsActive    *bool
}

type Repository interface {
	ListActive(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id int) (Member, bool, error)
	Create(ctx context.Context, in NewMember) (Member, error)
}
