package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rainesports/site-api/internal/domain/announcement"
)

type AnnouncementService struct {
	announcements announcement.Repository
}

func NewAnnouncementService(announcements announcement.Repository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	items, err := s.announcements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	return items, nil
}

func (s *AnnouncementService) ListActiveAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	items, err := s.announcements.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active announcements: %w", err)
	}

	return items, nil
}

func (s *AnnouncementService) GetAnnouncement(ctx context.Context, id int) (announcement.Announcement, error) {
	item, exists, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("get announcement: %w", err)
	}
	if !exists {
		return announcement.Announcement{}, fmt.Errorf("%w: announcement=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, in announcement.NewAnnouncement) (announcement.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return announcement.Announcement{}, fmt.Errorf("%w: announcement title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Message) == "" {
		return announcement.Announcement{}, fmt.Errorf("%w: announcement message is required", ErrInvalidInput)
	}
	if err := validateAnnouncementType(in.Type); err != nil {
		return announcement.Announcement{}, err
	}

	item, err := s.announcements.Create(ctx, in)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}

	return item, nil
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id int, patch announcement.Patch) (announcement.Announcement, error) {
	if err := validateAnnouncementType(patch.Type); err != nil {
		return announcement.Announcement{}, err
	}

	item, exists, err := s.announcements.Update(ctx, id, patch)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("update announcement: %w", err)
	}
	if !exists {
		return announcement.Announcement{}, fmt.Errorf("%w: announcement=%d", ErrNotFound, id)
	}

	return item, nil
}

// DeleteAnnouncement mirrors the store's idempotent delete: removing an
// absent id reports success.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id int) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}

	return nil
}

func validateAnnouncementType(kind *string) error {
	if kind == nil {
		return nil
	}
	switch *kind {
	case announcement.TypeInfo, announcement.TypeWarning, announcement.TypeSuccess, announcement.TypeError:
		return nil
	default:
		return fmt.Errorf("%w: unknown announcement type %q", ErrInvalidInput, *kind)
	}
}
