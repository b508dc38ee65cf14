package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rainesports/site-api/internal/domain/roster"
)

type RosterService struct {
	members roster.Repository
}

func NewRosterService(members roster.Repository) *RosterService {
	return &RosterService{members: members}
}

// ListMembers returns the publicly visible roster: active members only.
func (s *RosterService) ListMembers(ctx context.Context) ([]roster.Member, error) {
	members, err := s.members.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}

func (s *RosterService) GetMember(ctx context.Context, id int) (roster.Member, error) {
	member, exists, err := s.members.GetByID(ctx, id)
	if err != nil {
		return roster.Member{}, fmt.Errorf("get member: %w", err)
	}
	if !exists {
		return roster.Member{}, fmt.Errorf("%w: team member=%d", ErrNotFound, id)
	}

	return member, nil
}

func (s *RosterService) CreateMember(ctx context.Context, in roster.NewMember) (roster.Member, error) {
	if strings.TrimSpace(in.Name) == "" {
		return roster.Member{}, fmt.Errorf("%w: member name is required", ErrInvalidInput)
	}

	member, err := s.members.Create(ctx, in)
	if err != nil {
		return roster.Member{}, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}
