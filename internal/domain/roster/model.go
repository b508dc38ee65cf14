package roster

// Member is one player on the competitive roster.
type Member struct {
	ID          int
	Name        string
	Role        string
	Rank        string
	KDA         string
	ImageURL    string
	Description string
	IsActive    bool
}
