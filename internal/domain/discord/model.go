package discord

import "time"

// Stats mirrors the community's Discord server counts. The collection holds
// at most one live record; writes replace it wholesale.
type Stats struct {
	ID            int
	TotalMembers  int
	OnlineMembers int
	InviteURL     string
	UpdatedAt     time.Time
}

// InviteInfo is the metadata returned by the Discord invite lookup.
type InviteInfo struct {
	TotalMembers  int
	OnlineMembers int
	ServerName    string
	InviteURL     string
}
