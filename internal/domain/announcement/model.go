package announcement

import "time"

const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeError   = "error"
)

type Announcement struct {
	ID        int
	Title     string
	Message   string
	Type      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
